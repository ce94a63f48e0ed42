package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapateria/bodega-api/pkg/validate"
)

type registroPrueba struct {
	Nombre   string `validate:"nombre_valido"`
	Username string `validate:"username_valido"`
	Password string `validate:"password_fuerte"`
}

func TestNombreValido(t *testing.T) {
	va := validate.New()

	casos := map[string]bool{
		"José María":   true,
		"Ana":          true,
		"Peña Nieto":   true,
		"A":            false, // muy corto
		"Juan  Doble":  false, // doble espacio
		" Juan":        false, // espacio al inicio
		"Juan3":        false, // dígito
		"<script>":     false,
		"":             false,
	}
	for nombre, ok := range casos {
		err := va.Struct(registroPrueba{Nombre: nombre, Username: "user_1", Password: "Passw0rd"})
		if ok {
			assert.NoError(t, err, "nombre %q debería ser válido", nombre)
		} else {
			require.Error(t, err, "nombre %q debería ser inválido", nombre)
			field, _ := validate.First(err)
			assert.Equal(t, "Nombre", field)
		}
	}
}

func TestUsernameValido(t *testing.T) {
	va := validate.New()

	validos := []string{"usuario", "user_123", "ABC", "_x_"}
	for _, u := range validos {
		assert.NoError(t, va.Struct(registroPrueba{Nombre: "Ana", Username: u, Password: "Passw0rd"}))
	}

	invalidos := []string{"con espacio", "tilde-ño", "admin!", "", "a.b"}
	for _, u := range invalidos {
		err := va.Struct(registroPrueba{Nombre: "Ana", Username: u, Password: "Passw0rd"})
		require.Error(t, err, "username %q debería ser inválido", u)
		field, tag := validate.First(err)
		assert.Equal(t, "Username", field)
		assert.Equal(t, "username_valido", tag)
	}
}

func TestPasswordFuerte(t *testing.T) {
	va := validate.New()

	validas := []string{"Passw0rd", "Abcdef12", "S3guraClave!", "Xy9@$!%*?"}
	for _, p := range validas {
		assert.NoError(t, va.Struct(registroPrueba{Nombre: "Ana", Username: "ana", Password: p}),
			"password %q debería cumplir la política", p)
	}

	invalidas := []string{
		"corta1A",    // menos de 8
		"minusculas1", // sin mayúscula
		"MAYUSCULAS1", // sin minúscula
		"SinDigitos",  // sin número
		"Con Esp 1A",  // espacio no admitido
		"",
	}
	for _, p := range invalidas {
		err := va.Struct(registroPrueba{Nombre: "Ana", Username: "ana", Password: p})
		require.Error(t, err, "password %q debería violar la política", p)
		_, tag := validate.First(err)
		assert.Equal(t, "password_fuerte", tag)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Ana", validate.Sanitize("  Ana  "))
	assert.Equal(t, "&lt;b&gt;Ana&lt;&#x2F;b&gt;", validate.Sanitize("<b>Ana</b>"))
	assert.Equal(t, "O&#x27;Neil", validate.Sanitize("O'Neil"))
	assert.Equal(t, "a&amp;b", validate.Sanitize("a&b"))
}
