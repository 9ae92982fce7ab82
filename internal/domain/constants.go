package domain

// Default schedule values
const (
	DefaultOpenTime               = "07:00"
	DefaultCloseTime              = "20:30"
	DefaultSlotStepMinutes        = 30
	DefaultServiceDurationMinutes = 60
	DefaultShortDayCutoffHour     = 18
	DefaultDayWindowSize          = 6
)

// Business validation constants
const (
	MinSlotStepMinutes        = 5
	MaxSlotStepMinutes        = 240
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxClientNameLength       = 120
	MaxClientContactLength    = 40
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
