package criteria

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Alias precedence table. The first key present in the document wins, so the
// canonical spelling always beats the legacy one when both appear.
var fieldAliases = map[string][]string{
	"state":           {"state"},
	"county":          {"county"},
	"selectedTowns":   {"selectedTowns", "selected_towns", "towns"},
	"priceMin":        {"priceMin", "price_min", "min_price"},
	"priceMax":        {"priceMax", "price_max", "max_price"},
	"hasNoMin":        {"hasNoMin", "has_no_min", "no_min"},
	"hasNoMax":        {"hasNoMax", "has_no_max", "no_max"},
	"propertyTypes":   {"propertyTypes", "property_types", "prop_types"},
	"statuses":        {"statuses", "status"},
	"bedsMin":         {"bedsMin", "beds_min", "min_beds"},
	"bedsMax":         {"bedsMax", "beds_max", "max_beds"},
	"bathsMin":        {"bathsMin", "baths_min", "min_baths"},
	"bathsMax":        {"bathsMax", "baths_max", "max_baths"},
	"sqftMin":         {"sqftMin", "sqft_min", "min_sqft"},
	"sqftMax":         {"sqftMax", "sqft_max", "max_sqft"},
	"yearBuiltMin":    {"yearBuiltMin", "year_built_min"},
	"yearBuiltMax":    {"yearBuiltMax", "year_built_max"},
	"parkingMin":      {"parkingMin", "parking_min"},
	"parkingMax":      {"parkingMax", "parking_max"},
	"lotSizeMin":      {"lotSizeMin", "lot_size_min"},
	"lotSizeMax":      {"lotSizeMax", "lot_size_max"},
	"keywordsInclude": {"keywordsInclude", "keywords_include", "keywords"},
	"keywordsExclude": {"keywordsExclude", "keywords_exclude"},
	"keywordMode":     {"keywordMode", "keyword_mode"},
	"zipCode":         {"zipCode", "zip_code", "zip"},
	"streetNumber":    {"streetNumber", "street_number"},
	"streetName":      {"streetName", "street_name"},
	"limit":           {"limit", "max_results"},
	"sortColumn":      {"sortColumn", "sort_column", "sort"},
	"sortDirection":   {"sortDirection", "sort_direction", "dir"},
}

// Normalize converts a loosely-typed filter document into a canonical
// Criteria value. Unknown keys are ignored, absent and empty collections are
// equivalent, and malformed field values are dropped rather than reported:
// search must stay best-effort. Normalizing the document of an
// already-canonical value is a no-op.
func Normalize(doc map[string]any) Criteria {
	c := Default()
	if len(doc) == 0 {
		return c
	}

	c.Geo.State = lookupString(doc, "state")
	c.Geo.County = lookupString(doc, "county")
	c.Geo.Selectors = parseTowns(lookupStrings(doc, "selectedTowns"))

	c.Price.Min = lookupNumber(doc, "priceMin")
	c.Price.Max = lookupNumber(doc, "priceMax")
	c.Price.NoMin = lookupBool(doc, "hasNoMin")
	c.Price.NoMax = lookupBool(doc, "hasNoMax")

	c.PropertyTypes = lookupStrings(doc, "propertyTypes")
	c.Statuses = lookupStrings(doc, "statuses")

	c.Beds = lookupBounds(doc, "bedsMin", "bedsMax")
	c.Baths = lookupBounds(doc, "bathsMin", "bathsMax")
	c.Sqft = lookupBounds(doc, "sqftMin", "sqftMax")
	c.YearBuilt = lookupBounds(doc, "yearBuiltMin", "yearBuiltMax")
	c.Parking = lookupBounds(doc, "parkingMin", "parkingMax")
	c.LotSize = lookupBounds(doc, "lotSizeMin", "lotSizeMax")

	c.Keywords.Include = lookupString(doc, "keywordsInclude")
	c.Keywords.Exclude = lookupString(doc, "keywordsExclude")
	if mode := strings.ToLower(lookupString(doc, "keywordMode")); mode == KeywordModeAll {
		c.Keywords.Mode = KeywordModeAll
	}

	c.ZipCode = lookupString(doc, "zipCode")
	c.StreetNumber = lookupString(doc, "streetNumber")
	c.StreetName = lookupString(doc, "streetName")

	if limit := lookupNumber(doc, "limit"); limit != nil && *limit > 0 {
		c.Limit = int(*limit)
	}
	if col := lookupString(doc, "sortColumn"); col != "" {
		c.SortColumn = col
	}
	if dir := strings.ToLower(lookupString(doc, "sortDirection")); dir == "asc" || dir == "desc" {
		c.SortDirection = dir
	}

	return c
}

// Document renders the criteria back into its canonical persisted form.
// Normalize(c.Document()) reproduces c, which is what makes normalization
// idempotent for stored hotsheet snapshots.
func (c Criteria) Document() map[string]any {
	doc := make(map[string]any)

	putString(doc, "state", c.Geo.State)
	putString(doc, "county", c.Geo.County)
	if len(c.Geo.Selectors) > 0 {
		towns := make([]string, 0, len(c.Geo.Selectors))
		for _, sel := range c.Geo.Selectors {
			towns = append(towns, sel.String())
		}
		doc["selectedTowns"] = towns
	}

	putNumber(doc, "priceMin", c.Price.Min)
	putNumber(doc, "priceMax", c.Price.Max)
	if c.Price.NoMin {
		doc["hasNoMin"] = true
	}
	if c.Price.NoMax {
		doc["hasNoMax"] = true
	}

	if len(c.PropertyTypes) > 0 {
		doc["propertyTypes"] = append([]string(nil), c.PropertyTypes...)
	}
	if len(c.Statuses) > 0 {
		doc["statuses"] = append([]string(nil), c.Statuses...)
	}

	putNumber(doc, "bedsMin", c.Beds.Min)
	putNumber(doc, "bedsMax", c.Beds.Max)
	putNumber(doc, "bathsMin", c.Baths.Min)
	putNumber(doc, "bathsMax", c.Baths.Max)
	putNumber(doc, "sqftMin", c.Sqft.Min)
	putNumber(doc, "sqftMax", c.Sqft.Max)
	putNumber(doc, "yearBuiltMin", c.YearBuilt.Min)
	putNumber(doc, "yearBuiltMax", c.YearBuilt.Max)
	putNumber(doc, "parkingMin", c.Parking.Min)
	putNumber(doc, "parkingMax", c.Parking.Max)
	putNumber(doc, "lotSizeMin", c.LotSize.Min)
	putNumber(doc, "lotSizeMax", c.LotSize.Max)

	putString(doc, "keywordsInclude", c.Keywords.Include)
	putString(doc, "keywordsExclude", c.Keywords.Exclude)
	if c.Keywords.Mode == KeywordModeAll {
		doc["keywordMode"] = KeywordModeAll
	}

	putString(doc, "zipCode", c.ZipCode)
	putString(doc, "streetNumber", c.StreetNumber)
	putString(doc, "streetName", c.StreetName)

	if c.Limit > 0 {
		doc["limit"] = float64(c.Limit)
	}
	putString(doc, "sortColumn", c.SortColumn)
	putString(doc, "sortDirection", c.SortDirection)

	return doc
}

// String renders the selector in the composite "City-Neighborhood" form used
// by the UI and by persisted documents.
func (s GeoSelector) String() string {
	if s.Neighborhood == "" {
		return s.City
	}

	return s.City + "-" + s.Neighborhood
}

// parseTowns splits composite "City-Neighborhood" strings. The hyphen is the
// only recognized separator; a bare "City" yields a whole-city selector.
func parseTowns(towns []string) []GeoSelector {
	if len(towns) == 0 {
		return nil
	}

	selectors := make([]GeoSelector, 0, len(towns))
	for _, town := range towns {
		town = strings.TrimSpace(town)
		if town == "" {
			continue
		}

		city, neighborhood, _ := strings.Cut(town, "-")
		selectors = append(selectors, GeoSelector{
			City:         strings.TrimSpace(city),
			Neighborhood: strings.TrimSpace(neighborhood),
		})
	}

	if len(selectors) == 0 {
		return nil
	}

	return selectors
}

func resolveAlias(doc map[string]any, field string) (any, bool) {
	for _, key := range fieldAliases[field] {
		if value, ok := doc[key]; ok && value != nil {
			return value, true
		}
	}

	return nil, false
}

func lookupString(doc map[string]any, field string) string {
	value, ok := resolveAlias(doc, field)
	if !ok {
		return ""
	}

	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}

	return ""
}

// lookupNumber coerces JSON numbers, Go numerics and numeric strings. A
// malformed value is treated as absent, never as an error.
func lookupNumber(doc map[string]any, field string) *float64 {
	value, ok := resolveAlias(doc, field)
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)

		return &f
	case int:
		f := float64(v)

		return &f
	case int64:
		f := float64(v)

		return &f
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return &f
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
	}

	return nil
}

func lookupBool(doc map[string]any, field string) bool {
	value, ok := resolveAlias(doc, field)
	if !ok {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))

		return err == nil && parsed
	}

	return false
}

// lookupStrings accepts []string, []any of strings, or a single string.
// A present-but-empty collection is indistinguishable from an absent one.
func lookupStrings(doc map[string]any, field string) []string {
	value, ok := resolveAlias(doc, field)
	if !ok {
		return nil
	}

	var raw []any
	switch v := value.(type) {
	case []string:
		for _, s := range v {
			raw = append(raw, s)
		}
	case []any:
		raw = v
	case string:
		raw = []any{v}
	default:
		return nil
	}

	values := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			values = append(values, s)
		}
	}

	if len(values) == 0 {
		return nil
	}

	return values
}

func lookupBounds(doc map[string]any, minField, maxField string) Bounds {
	return Bounds{
		Min: lookupNumber(doc, minField),
		Max: lookupNumber(doc, maxField),
	}
}

func putString(doc map[string]any, key, value string) {
	if value != "" {
		doc[key] = value
	}
}

func putNumber(doc map[string]any, key string, value *float64) {
	if value != nil {
		doc[key] = *value
	}
}
