package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Passwords aplica la política de contraseñas: hash bcrypt con comparación en tiempo constante.
// El modo texto plano existe solo por compatibilidad con datos heredados y debe activarse explícitamente.
type Passwords struct {
	plaintext bool
	cost      int
	dummy     []byte
}

// NewPasswords construye la política. plaintext=true guarda y compara contraseñas en claro.
func NewPasswords(plaintext bool) *Passwords {
	p := &Passwords{plaintext: plaintext, cost: bcrypt.DefaultCost}
	// Hash de relleno para que un email inexistente cueste lo mismo que una contraseña incorrecta.
	p.dummy, _ = bcrypt.GenerateFromPassword([]byte("relleno-sin-usuario"), p.cost)
	return p
}

// Plaintext indica si está activo el modo de compatibilidad.
func (p *Passwords) Plaintext() bool { return p.plaintext }

// Hash devuelve el valor a persistir para raw.
func (p *Passwords) Hash(raw string) (string, error) {
	if p.plaintext {
		return raw, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), p.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Matches compara raw contra el valor persistido.
func (p *Passwords) Matches(stored, raw string) bool {
	if p.plaintext {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(raw)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(raw)) == nil
}

// burn consume el mismo tiempo que una comparación real.
func (p *Passwords) burn(raw string) {
	if p.plaintext {
		subtle.ConstantTimeCompare([]byte(raw), []byte(raw))
		return
	}
	_ = bcrypt.CompareHashAndPassword(p.dummy, []byte(raw))
}
