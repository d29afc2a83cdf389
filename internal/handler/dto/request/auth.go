package request

type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario" binding:"required"`
	Contrasenia   string `json:"contrasenia" binding:"required"`
}
