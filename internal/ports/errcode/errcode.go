package errcode

type Code string

const (
	LoginRequired Code = "LOGIN_REQUIRED"
	NoToken       Code = "NO_TOKEN_RETURNED"
	Validation    Code = "VALIDATION"

	BadRequest   Code = "BAD_REQUEST"
	Unauthorized Code = "UNAUTHORIZED"
	NotFound     Code = "NOT_FOUND"
	Conflict     Code = "CONFLICT"
	Cooldown     Code = "COOLDOWN_ACTIVE"
	Unavailable  Code = "UNAVAILABLE"

	Network  Code = "NETWORK"
	Internal Code = "INTERNAL_ERROR"
)
