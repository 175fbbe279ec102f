package dto

type LoginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	DeviceInfo string `json:"-"`
	IPAddress  string `json:"-"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}
