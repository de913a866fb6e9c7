package authorization

import (
	"fmt"
	"os"
	"time"

	"github.com/cristalhq/jwt/v4"

	"github.com/tasfia236/TravelTourismServer/domain"
)

// TokenTTL is the fixed lifetime of issued tokens.
const TokenTTL = 60 * time.Minute

func jwtKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}

func GenerateJWT(claims *domain.Claims) (string, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, jwtKey())
	if err != nil {
		return "", err
	}

	builder := jwt.NewBuilder(signer)
	token, err := builder.Build(claims)
	if err != nil {
		return "", err
	}

	return token.String(), nil
}

// VerifyJWT checks the signature and the embedded expiry and returns the
// claims carried by the token.
func VerifyJWT(tokenString string) (*domain.Claims, error) {
	verifier, err := jwt.NewVerifierHS(jwt.HS256, jwtKey())
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse([]byte(tokenString), verifier)
	if err != nil {
		return nil, err
	}

	var claims domain.Claims
	if err := jwt.ParseClaims(token.Bytes(), verifier, &claims); err != nil {
		return nil, err
	}

	if claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("token has expired")
	}

	return &claims, nil
}
