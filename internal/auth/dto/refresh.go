package dto

type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
	DeviceInfo   string `json:"-"`
	IPAddress    string `json:"-"`
}

type LogoutInput struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
