package reservation

// Status is the persisted lifecycle state. Soft delete flips Activa to
// Inactiva; rows are never physically removed.
type Status string

const (
	StatusActiva   Status = "activa"
	StatusInactiva Status = "inactiva"
)

func StatusFromActivo(activo bool) Status {
	if activo {
		return StatusActiva
	}
	return StatusInactiva
}

func (s Status) Activo() bool {
	return s == StatusActiva
}

func (s Status) String() string {
	return string(s)
}
