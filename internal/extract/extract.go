// Package extract 从自由文本中提取结构化槽位值
// （金额、邮箱、日期时间短语、人名、车辆信息）。
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern 数字加可选量级词（"10 millones"、"₡5.000.000"、"2500"）
var amountPattern = regexp.MustCompile(`(?i)(?:₡|\$)?\s*\d+(?:[.,]\d+)*(?:\s*(?:millones|millón|millon|mil)\b)?`)

// Amount 提取金额短语，按用户原文返回；未找到返回空串
func Amount(text string) string {
	return strings.TrimSpace(amountPattern.FindString(text))
}

// emailPattern 宽松的邮箱匹配
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Email 提取邮箱地址，未找到返回空串
func Email(text string) string {
	return emailPattern.FindString(text)
}

// Date 日期时间短语的解析结果
type Date struct {
	Day    int
	Month  int
	Hour   int
	Minute int
}

// monthNames 西语月份名（含 setiembre 变体）
var monthNames = map[string]int{
	"enero": 1, "febrero": 2, "marzo": 3, "abril": 4,
	"mayo": 5, "junio": 6, "julio": 7, "agosto": 8,
	"septiembre": 9, "setiembre": 9, "octubre": 10,
	"noviembre": 11, "diciembre": 12,
}

var (
	dayMonthPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s+de\s+([a-záéíóúñ]+)`)
	hourPattern     = regexp.MustCompile(`(?i)a\s+las?\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
)

// DatePhrase 解析"el 15 de setiembre a las 9am"一类的短语。
// 需要同时出现日和月才算命中；时间可选
func DatePhrase(text string) (Date, bool) {
	m := dayMonthPattern.FindStringSubmatch(text)
	if m == nil {
		return Date{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, ok := monthNames[strings.ToLower(m[2])]
	if !ok || day < 1 || day > 31 {
		return Date{}, false
	}

	d := Date{Day: day, Month: month}
	if h := hourPattern.FindStringSubmatch(text); h != nil {
		d.Hour, _ = strconv.Atoi(h[1])
		if h[2] != "" {
			d.Minute, _ = strconv.Atoi(h[2])
		}
		if strings.EqualFold(h[3], "pm") && d.Hour < 12 {
			d.Hour += 12
		}
	}
	return d, true
}

// personPattern "con <Nombre>" 中的首字母大写词
var personPattern = regexp.MustCompile(`(?:^|\s)con\s+([A-ZÁÉÍÓÚÑ][a-zA-Záéíóúñ]*)`)

// Person 提取"con Jeff"中的人名，未找到返回空串
func Person(text string) string {
	m := personPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// Vehicle 车辆信息的解析结果
type Vehicle struct {
	Year  string
	Make  string
	Model string
}

// knownMakes 常见车辆品牌（小写）
var knownMakes = []string{
	"toyota", "honda", "nissan", "hyundai", "kia", "ford",
	"chevrolet", "mazda", "suzuki", "mitsubishi", "volkswagen",
	"bmw", "mercedes", "audi", "subaru", "isuzu", "renault", "peugeot",
}

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// VehicleInfo 从"2018 Toyota Corolla"一类文本中提取年份、品牌和型号。
// 三个字段互相独立，缺哪个哪个留空
func VehicleInfo(text string) Vehicle {
	var v Vehicle
	v.Year = yearPattern.FindString(text)

	tokens := strings.Fields(text)
	for i, tok := range tokens {
		lower := strings.ToLower(strings.Trim(tok, ".,;"))
		for _, brand := range knownMakes {
			if lower == brand {
				v.Make = strings.Trim(tok, ".,;")
				if i+1 < len(tokens) {
					v.Model = strings.Trim(tokens[i+1], ".,;")
				}
				return v
			}
		}
	}
	return v
}
