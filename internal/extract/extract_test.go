package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	require.Equal(t, "10 millones", Amount("10 millones, por ahí"))
	require.Equal(t, "₡5.000.000", Amount("vale ₡5.000.000 más o menos"))
	require.Equal(t, "2500", Amount("unos 2500"))
	require.Equal(t, "", Amount("no tengo idea"))
}

func TestEmail(t *testing.T) {
	require.Equal(t, "a@b.com", Email("10 millones, a@b.com"))
	require.Equal(t, "maria.perez+x@empresa.co.cr", Email("escribime a maria.perez+x@empresa.co.cr gracias"))
	require.Equal(t, "", Email("sin correo"))
}

func TestDatePhrase(t *testing.T) {
	d, ok := DatePhrase("agendá con Jeff el 15 de setiembre a las 9am")
	require.True(t, ok)
	require.Equal(t, 15, d.Day)
	require.Equal(t, 9, d.Month)
	require.Equal(t, 9, d.Hour)
	require.Equal(t, 0, d.Minute)

	d, ok = DatePhrase("el 3 de Diciembre a las 2:30 pm")
	require.True(t, ok)
	require.Equal(t, 3, d.Day)
	require.Equal(t, 12, d.Month)
	require.Equal(t, 14, d.Hour)
	require.Equal(t, 30, d.Minute)

	// 只有día sin mes no alcanza
	_, ok = DatePhrase("el 15 a las 9")
	require.False(t, ok)

	_, ok = DatePhrase("mañana temprano")
	require.False(t, ok)
}

func TestPerson(t *testing.T) {
	require.Equal(t, "Jeff", Person("agendá con Jeff el 15 de setiembre"))
	require.Equal(t, "Ana", Person("con Ana por favor"))
	require.Equal(t, "", Person("agendá una llamada"))
	// minúscula no cuenta como nombre
	require.Equal(t, "", Person("con el agente"))
}

func TestVehicleInfo(t *testing.T) {
	v := VehicleInfo("2018 Toyota Corolla")
	require.Equal(t, "2018", v.Year)
	require.Equal(t, "Toyota", v.Make)
	require.Equal(t, "Corolla", v.Model)

	v = VehicleInfo("es un Nissan Frontier del 2021")
	require.Equal(t, "2021", v.Year)
	require.Equal(t, "Nissan", v.Make)
	require.Equal(t, "Frontier", v.Model)

	v = VehicleInfo("2018 Toyota")
	require.Equal(t, "2018", v.Year)
	require.Equal(t, "Toyota", v.Make)
	require.Equal(t, "", v.Model)

	v = VehicleInfo("asegurar mi carro")
	require.Equal(t, "", v.Year)
	require.Equal(t, "", v.Make)
}
