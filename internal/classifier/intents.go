package classifier

// 意图标签集合
const (
	IntentSaludo       = "saludo"
	IntentTodoRiesgo   = "seguro.todo_riesgo"
	IntentConstruccion = "seguro.construccion"
	IntentElectronico  = "seguro.electronico"
	IntentVehiculo     = "seguro.vehiculo"
	IntentCotizacion   = "cotizacion"
	IntentAgenda       = "agenda"
	IntentRecordatorio = "recordatorio"
	IntentResumen      = "resumen"
	IntentDesconocido  = "desconocido"
)

// knownLabels 全部已知标签
var knownLabels = []string{
	IntentSaludo,
	IntentTodoRiesgo,
	IntentConstruccion,
	IntentElectronico,
	IntentVehiculo,
	IntentCotizacion,
	IntentAgenda,
	IntentRecordatorio,
	IntentResumen,
	IntentDesconocido,
}

// KnownLabels 返回已知标签列表
func KnownLabels() []string {
	out := make([]string, len(knownLabels))
	copy(out, knownLabels)
	return out
}

// IsKnownLabel 判断标签是否在已知集合内
func IsKnownLabel(label string) bool {
	for _, l := range knownLabels {
		if l == label {
			return true
		}
	}
	return false
}
