package domain

// Carrier preset identifiers. A preset pins the time-slot list to the
// carrier's published delivery windows; CarrierCustom keeps whatever the
// merchant typed in.
const (
	CarrierYamato   = "yamato"
	CarrierSagawa   = "sagawa"
	CarrierYuupack  = "yuupack"
	CarrierFukuyama = "fukuyama"
	CarrierSeino    = "seino"
	CarrierNittsu   = "nittsu"
	CarrierCustom   = "custom"
)

// CarrierPresetSlots slot labels per carrier preset.
var CarrierPresetSlots = map[string][]string{
	CarrierYamato: {
		"08:00-12:00",
		"12:00-14:00",
		"14:00-16:00",
		"16:00-18:00",
		"18:00-20:00",
		"19:00-21:00",
	},
	CarrierSagawa: {
		"08:00-12:00",
		"12:00-14:00",
		"14:00-16:00",
		"16:00-18:00",
		"18:00-20:00",
		"19:00-21:00",
	},
	CarrierYuupack: {
		"午前中",
		"12:00-14:00",
		"14:00-16:00",
		"16:00-18:00",
		"18:00-20:00",
		"19:00-21:00",
	},
	CarrierFukuyama: {
		"10:00-12:00",
		"12:00-14:00",
		"14:00-16:00",
		"16:00-18:00",
		"18:00～20:00",
	},
	CarrierSeino: {
		"午前",
		"午後",
	},
	CarrierNittsu: {
		"午前中",
		"午後",
	},
}

// IsValidCarrierPreset reports whether name is a known preset (including custom).
func IsValidCarrierPreset(name string) bool {
	if name == CarrierCustom {
		return true
	}
	_, ok := CarrierPresetSlots[name]
	return ok
}
