package response

import "salones-api/internal/usecase/auth"

type LoginUser struct {
	UsuarioID     int64  `json:"usuario_id"`
	NombreUsuario string `json:"nombre_usuario"`
	Nombre        string `json:"nombre"`
	Apellido      string `json:"apellido"`
	TipoUsuario   string `json:"tipo_usuario"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	Usuario     LoginUser `json:"usuario"`
}

func FromLoginResult(result *auth.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: result.Token,
		Usuario: LoginUser{
			UsuarioID:     result.UsuarioID,
			NombreUsuario: result.NombreUsuario,
			Nombre:        result.Nombre,
			Apellido:      result.Apellido,
			TipoUsuario:   string(result.Role),
		},
	}
}
