package classifier

import "github.com/noabot/noabot-go/internal/model"

// SeedExamples 内置种子语料，再训练时始终与累积样本合并使用
func SeedExamples() []model.IntentExample {
	return []model.IntentExample{
		{Text: "hola", Label: IntentSaludo},
		{Text: "buenas tardes", Label: IntentSaludo},
		{Text: "buenos días cómo está", Label: IntentSaludo},
		{Text: "saludos desde san josé", Label: IntentSaludo},
		{Text: "buenas noches", Label: IntentSaludo},

		{Text: "qué cubre el seguro todo riesgo", Label: IntentTodoRiesgo},
		{Text: "información del todo riesgo", Label: IntentTodoRiesgo},
		{Text: "me interesa un seguro todo riesgo para mi negocio", Label: IntentTodoRiesgo},

		{Text: "todo riesgo construcción para una obra", Label: IntentConstruccion},
		{Text: "seguro para construcción de edificio", Label: IntentConstruccion},
		{Text: "cubren materiales y equipo en obra", Label: IntentConstruccion},

		{Text: "seguro de equipo electrónico", Label: IntentElectronico},
		{Text: "proteger computadoras y servidores", Label: IntentElectronico},
		{Text: "cobertura para equipos electrónicos de oficina", Label: IntentElectronico},

		{Text: "quiero asegurar mi carro", Label: IntentVehiculo},
		{Text: "seguro para mi vehículo", Label: IntentVehiculo},
		{Text: "necesito asegurar el auto", Label: IntentVehiculo},
		{Text: "cuánto cuesta asegurar un carro 2020", Label: IntentVehiculo},

		{Text: "quiero una cotización", Label: IntentCotizacion},
		{Text: "cuál es el precio del seguro", Label: IntentCotizacion},
		{Text: "me puede cotizar una póliza", Label: IntentCotizacion},

		{Text: "agendá una llamada", Label: IntentAgenda},
		{Text: "quiero agendar una cita", Label: IntentAgenda},
		{Text: "me pueden llamar mañana", Label: IntentAgenda},
		{Text: "agendá con el agente el viernes", Label: IntentAgenda},

		{Text: "recordame pagar la póliza", Label: IntentRecordatorio},
		{Text: "podés recordar que venza el seguro", Label: IntentRecordatorio},

		{Text: "resumime este documento", Label: IntentResumen},
		{Text: "hacé un resumen del audio", Label: IntentResumen},

		{Text: "asdf qwerty", Label: IntentDesconocido},
		{Text: "no entiendo nada de esto", Label: IntentDesconocido},
		{Text: "cuál es la capital de francia", Label: IntentDesconocido},
	}
}
