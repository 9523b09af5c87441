package models

// ShiftType defines the working shifts a break scope can belong to
type ShiftType string

const (
	ShiftTypeDay       ShiftType = "day"
	ShiftTypeAfternoon ShiftType = "afternoon"
	ShiftTypeNight     ShiftType = "night"
)

// IsValid checks if the ShiftType is valid
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftTypeDay, ShiftTypeAfternoon, ShiftTypeNight:
		return true
	}
	return false
}

// SlotOrigin defines where a break slot definition comes from
type SlotOrigin string

const (
	SlotOriginTemplate        SlotOrigin = "template"
	SlotOriginPersistedCustom SlotOrigin = "persisted_custom"
	SlotOriginDraftCustom     SlotOrigin = "draft_custom"
)

// IsValid checks if the SlotOrigin is valid
func (o SlotOrigin) IsValid() bool {
	switch o {
	case SlotOriginTemplate, SlotOriginPersistedCustom, SlotOriginDraftCustom:
		return true
	}
	return false
}

// BreakCategory is the tagged break-type classification derived once from a
// slot's duration at catalog-build time, instead of re-parsing label strings.
type BreakCategory string

const (
	BreakCategoryFifteenMin   BreakCategory = "fifteen_min"
	BreakCategoryFortyFiveMin BreakCategory = "forty_five_min"
	BreakCategorySixtyMin     BreakCategory = "sixty_min"
	BreakCategoryCustom       BreakCategory = "custom"
)

// CategoryForDuration maps a slot duration in minutes to its break category.
func CategoryForDuration(minutes int) BreakCategory {
	switch minutes {
	case 15:
		return BreakCategoryFifteenMin
	case 45:
		return BreakCategoryFortyFiveMin
	case 60:
		return BreakCategorySixtyMin
	}
	return BreakCategoryCustom
}
