// Package validate centraliza la validación declarativa de entrada.
//
// Los DTOs declaran sus reglas con tags `validate:"..."` de go-playground/validator
// y aquí se registran las validaciones propias del dominio (nombres, username,
// política de contraseñas). La sanitización reproduce el escape de caracteres
// significativos de markup que hacía el sistema original antes de validar.
package validate

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var (
	// Letras (incluye vocales acentuadas y ñ) con espacios simples internos.
	nameRe = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ]+(?:\s[a-zA-ZáéíóúÁÉÍÓÚñÑ]+)*$`)
	// Alfanumérico y guion bajo, sin espacios ni caracteres especiales.
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	// Caracteres admitidos en contraseñas (la política de composición se verifica aparte).
	passwordCharsRe = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
)

// Validator valida structs con las reglas propias de la aplicación registradas.
type Validator struct {
	v *validator.Validate
}

// New construye el validador y registra las validaciones de dominio:
// nombre_valido, username_valido y password_fuerte.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("nombre_valido", validNombre)
	_ = v.RegisterValidation("username_valido", validUsername)
	_ = v.RegisterValidation("password_fuerte", strongPassword)
	return &Validator{v: v}
}

// Struct evalúa las reglas declaradas en el DTO. Devuelve nil si todo es válido.
func (va *Validator) Struct(s interface{}) error {
	return va.v.Struct(s)
}

// First devuelve el campo y el tag de la primera violación, o cadenas vacías
// si err no es un error de validación.
func First(err error) (field, tag string) {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "", ""
	}
	return verrs[0].Field(), verrs[0].Tag()
}

// UsernameValido informa si s cumple el patrón de username. Útil donde no hay
// un struct completo que validar (login).
func UsernameValido(s string) bool {
	return usernameRe.MatchString(s)
}

// validNombre: solo letras y espacios simples internos, 2 a 50 caracteres.
func validNombre(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	n := utf8.RuneCountInString(s)
	if n < 2 || n > 50 {
		return false
	}
	return nameRe.MatchString(s)
}

// validUsername: letras, números y guiones bajos.
func validUsername(fl validator.FieldLevel) bool {
	return usernameRe.MatchString(fl.Field().String())
}

// strongPassword: mínimo 8 caracteres con al menos una minúscula, una mayúscula
// y un dígito. RE2 no soporta lookahead, así que la composición se revisa a mano.
func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 || !passwordCharsRe.MatchString(s) {
		return false
	}
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	"`", "&#96;",
	`\`, "&#x5C;",
)

// Sanitize recorta espacios y escapa los caracteres significativos de markup
// antes de validar y persistir (nombre, apellido y username).
func Sanitize(s string) string {
	return escaper.Replace(strings.TrimSpace(s))
}
