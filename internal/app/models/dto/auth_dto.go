package dto

// TokenRequest asks for an API token for a known user email. The upstream
// sign-in provider has already authenticated the user; this endpoint only
// mints the bearer token the API consumes.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// TokenResponse carries the minted access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
