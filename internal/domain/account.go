package domain

// LoginResult - ответ POST /auth/login
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   string
}

var loginAliases = aliases{
	"access_token": {"access_token", "accessToken", "AccessToken"},
	"token_type":   {"token_type", "tokenType", "TokenType"},
	"expires_at":   {"expires_at", "expiresAt", "ExpiresAt"},
}

func (l *LoginResult) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, loginAliases, map[string]fieldDecoder{
		"access_token": asString(&l.AccessToken),
		"token_type":   asString(&l.TokenType),
		"expires_at":   asString(&l.ExpiresAt),
	})
}

// User - подтверждение регистрации
type User struct {
	ID        int64
	Email     string
	Name      string
	CreatedAt string
}

var userAliases = aliases{
	"id":         {"id", "ID", "Id"},
	"email":      {"email", "Email"},
	"name":       {"name", "Name"},
	"created_at": {"created_at", "createdAt", "CreatedAt"},
}

func (u *User) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, userAliases, map[string]fieldDecoder{
		"id":         asInt64(&u.ID),
		"email":      asString(&u.Email),
		"name":       asString(&u.Name),
		"created_at": asString(&u.CreatedAt),
	})
}

// Credentials - вход в API
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration - данные для POST /auth/register
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
