package network

import "strings"

// Keyword order matters: an Intel wireless card mentions both "intel" and
// "wi-fi", so wireless keywords are checked first.
var wifiKeywords = []string{"wi-fi", "wireless", "wifi"}
var ethernetKeywords = []string{"ethernet", "gigabit", "realtek", "intel"}

// ClassifyType guesses the connection type from a free-text interface description.
func ClassifyType(description string) AdapterType {
	desc := strings.ToLower(description)

	if containsAny(desc, wifiKeywords) {
		return TypeWiFi
	}

	if containsAny(desc, ethernetKeywords) {
		return TypeEthernet
	}

	return TypeUnknown
}

// ClassifyStatus maps an OS status string to an AdapterStatus. Anything
// unrecognised becomes StatusUnknown.
func ClassifyStatus(raw string) AdapterStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "up":
		return StatusUp
	case "disabled":
		return StatusDisabled
	case "disconnected":
		return StatusDisconnected
	}

	return StatusUnknown
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}

	return false
}
