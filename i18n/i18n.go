// Package i18n provides the static localization tables for report rendering.
// Lookups are pure; an unsupported language code falls back to the default
// language instead of erroring.
package i18n

// Table maps string keys to display text in one language.
type Table map[string]string

// DefaultLanguage is used when the requested language is not supported.
const DefaultLanguage = "uk"

// SupportedLanguages lists the language codes with a full table, default
// first.
var SupportedLanguages = []string{"uk", "en", "pl"}

var tables = map[string]Table{
	"uk": {
		"testReport":            "Звіт про виконання тестів",
		"summary":               "ПІДСУМКИ ВИКОНАННЯ ТЕСТІВ",
		"totalTests":            "Всього тестів",
		"passed":                "Пройдено",
		"failed":                "Провалено",
		"skipped":               "Пропущено",
		"flaky":                 "Нестабільні",
		"duration":              "Тривалість",
		"passRate":              "Показник успішності",
		"overview":              "Огляд",
		"allTests":              "Всі тести",
		"failedTests":           "Провалені",
		"timeline":              "Часова шкала",
		"projects":              "По проектах",
		"statusDistribution":    "Розподіл за статусом",
		"durationAnalysis":      "Аналіз тривалості",
		"testsByCategory":       "Тести за категоріями",
		"passRateTrend":         "Тренд успішності",
		"topFilesByTests":       "Топ файлів за тестами",
		"slowestTests":          "Найповільніші тести",
		"projectsSummary":       "Підсумки проектів",
		"testDetails":           "Деталі тестів",
		"testExecutionTimeline": "Часова шкала виконання тестів",
		"testSteps":             "Кроки тесту",
		"error":                 "Помилка",
		"noFailedTests":         "🎉 Немає провалених тестів!",
		"timestamp":             "Час виконання",
		"workers":               "Воркери",
		"runtimeVersion":        "Версія Go",
		"reporter":              "Репортер",
		"platform":              "Платформа",
		"environment":           "Середовище",
		"all":                   "Всі",
		"search":                "Пошук тестів...",
		"generatedAt":           "Згенеровано",
		"tests":                 "тестів",
	},
	"en": {
		"testReport":            "Test Execution Report",
		"summary":               "TEST EXECUTION SUMMARY",
		"totalTests":            "Total Tests",
		"passed":                "Passed",
		"failed":                "Failed",
		"skipped":               "Skipped",
		"flaky":                 "Flaky",
		"duration":              "Duration",
		"passRate":              "Pass Rate",
		"overview":              "Overview",
		"allTests":              "All Tests",
		"failedTests":           "Failed",
		"timeline":              "Timeline",
		"projects":              "By Project",
		"statusDistribution":    "Status Distribution",
		"durationAnalysis":      "Duration Analysis",
		"testsByCategory":       "Tests by Category",
		"passRateTrend":         "Pass Rate Trend",
		"topFilesByTests":       "Top Files by Tests",
		"slowestTests":          "Slowest Tests",
		"projectsSummary":       "Projects Summary",
		"testDetails":           "Test Details",
		"testExecutionTimeline": "Test Execution Timeline",
		"testSteps":             "Test Steps",
		"error":                 "Error",
		"noFailedTests":         "🎉 No failed tests!",
		"timestamp":             "Timestamp",
		"workers":               "Workers",
		"runtimeVersion":        "Go Version",
		"reporter":              "Reporter",
		"platform":              "Platform",
		"environment":           "Environment",
		"all":                   "All",
		"search":                "Search tests...",
		"generatedAt":           "Generated",
		"tests":                 "tests",
	},
	"pl": {
		"testReport":            "Raport wykonania testów",
		"summary":               "PODSUMOWANIE WYKONANIA TESTÓW",
		"totalTests":            "Wszystkie testy",
		"passed":                "Zaliczone",
		"failed":                "Nieudane",
		"skipped":               "Pominięte",
		"flaky":                 "Niestabilne",
		"duration":              "Czas trwania",
		"passRate":              "Wskaźnik sukcesu",
		"overview":              "Przegląd",
		"allTests":              "Wszystkie testy",
		"failedTests":           "Nieudane",
		"timeline":              "Oś czasu",
		"projects":              "Według projektów",
		"statusDistribution":    "Rozkład według statusu",
		"durationAnalysis":      "Analiza czasu trwania",
		"testsByCategory":       "Testy według kategorii",
		"passRateTrend":         "Trend wskaźnika sukcesu",
		"topFilesByTests":       "Najważniejsze pliki według testów",
		"slowestTests":          "Najwolniejsze testy",
		"projectsSummary":       "Podsumowanie projektów",
		"testDetails":           "Szczegóły testów",
		"testExecutionTimeline": "Oś czasu wykonania testów",
		"testSteps":             "Kroki testu",
		"error":                 "Błąd",
		"noFailedTests":         "🎉 Brak nieudanych testów!",
		"timestamp":             "Znacznik czasu",
		"workers":               "Workery",
		"runtimeVersion":        "Wersja Go",
		"reporter":              "Reporter",
		"platform":              "Platforma",
		"environment":           "Środowisko",
		"all":                   "Wszystkie",
		"search":                "Szukaj testów...",
		"generatedAt":           "Wygenerowano",
		"tests":                 "testów",
	},
}

// Strings returns the localization table for a language code, falling back
// to the default language when the code is unsupported.
func Strings(lang string) Table {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[DefaultLanguage]
}

// IsSupported reports whether a language code has a full table.
func IsSupported(lang string) bool {
	_, ok := tables[lang]
	return ok
}
