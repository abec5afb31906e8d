package categorizer

// builtinRules returns the default rule list for Kaspi statements. Order is
// significant: groceries before dining so that e.g. "MAGNUM CAFE" resolves
// as groceries, transfers last among the specific rules.
func builtinRules() []Rule {
	return []Rule{
		{Category: "Продукты", Keywords: []string{"MAGNUM"}},
		{Category: "Транспорт", Keywords: []string{"ONAY", "TAXI", "UBER", "YANDEX"}},
		{Category: "Еда", Keywords: []string{"CAFE", "DONER", "RESTAURANT", "KFC"}},
		{Category: "Здоровье", Keywords: []string{"PHARMACY", "APTEKA"}},
		{Category: "Переводы", Keywords: []string{"PEREVOD", "ПЕРЕВОД"}},
	}
}
