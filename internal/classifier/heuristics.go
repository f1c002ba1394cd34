package classifier

import "strings"

// keywordRule 关键词规则：All 全部命中且 Any 至少命中一个才生效
type keywordRule struct {
	All   []string
	Any   []string
	Label string
}

// keywordRules 按优先级排列，取第一条命中的规则
var keywordRules = []keywordRule{
	{All: []string{"todo riesgo", "constru"}, Label: IntentConstruccion},
	{Any: []string{"todo riesgo"}, Label: IntentTodoRiesgo},
	{Any: []string{"electrónic", "electronic"}, Label: IntentElectronico},
	{Any: []string{"asegurar", "carro", "vehículo", "vehiculo", "auto"}, Label: IntentVehiculo},
	{Any: []string{"cotiz", "precio"}, Label: IntentCotizacion},
	{Any: []string{"agend", "llamar"}, Label: IntentAgenda},
	{Any: []string{"recordame", "recordar"}, Label: IntentRecordatorio},
	{Any: []string{"resumime", "resumen"}, Label: IntentResumen},
	{Any: []string{"hola", "buenas", "saludos"}, Label: IntentSaludo},
}

// HeuristicLabel 按关键词规则给出标签，无规则命中返回空串
func HeuristicLabel(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return ""
	}

	for _, rule := range keywordRules {
		if rule.matches(t) {
			return rule.Label
		}
	}
	return ""
}

// matches 判断规则是否命中（输入已小写）
func (r keywordRule) matches(t string) bool {
	for _, kw := range r.All {
		if !strings.Contains(t, kw) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return len(r.All) > 0
	}
	for _, kw := range r.Any {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}
