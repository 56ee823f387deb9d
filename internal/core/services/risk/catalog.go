// Package risk implements the multi-signal scoring cascade that turns one
// wireless observation into a risk assessment.
package risk

import (
	"github.com/suraksha-labs/suraksha/internal/core/domain"
)

// Benign defaults substituted for absent observation fields. The scorer is
// a total function: it never rejects an observation, it fills the gaps.
const (
	defaultSSID             = "Unknown"
	defaultBSSID            = "00:00:00:00:00:00"
	defaultGatewayMAC       = "AA:BB:CC:DD:EE:FF"
	defaultSNR              = 30.0
	defaultCongestion       = 20.0
	defaultLatency          = 20.0
	defaultBroadcastDensity = 0.05
)

// Placeholder policy sentinels. These stand in for real OUI/behavioral
// detection until a proper strategy replaces them; they live here as data
// so the cascade itself stays policy-free.
const (
	spoofedOUIPrefix   = "00:11:22"
	attackerGatewayMAC = "FF:EE:DD:CC:BB:AA"
)

// govAllowList are the government portals subject to the DNS integrity check.
var govAllowList = []string{
	"uidai.gov.in",
	"prakash.gov.in",
	"pmkisan.gov.in",
}

// guestMarkers flag SSIDs that advertise public or guest access.
var guestMarkers = []string{"Free", "Guest"}

// catalogEntry binds a severity and a bilingual message pair to one
// alert category.
type catalogEntry struct {
	severity  domain.AlertSeverity
	messageEN string
	messageMR string
}

// alertCatalog is the static table behind every alert the cascade can emit.
// It is immutable after process start and unit-tested independently of the
// scoring rules.
var alertCatalog = map[domain.AlertCategory]catalogEntry{
	domain.AlertPhysicalLayer: {
		severity:  domain.SeverityCritical,
		messageEN: "Suspicious signal interference detected (Low SNR).",
		messageMR: "तुमच्या आजूबाजूला संशयास्पद सिग्नल आहे. सुरक्षिततेसाठी इंटरनेट बंद ठेवा.",
	},
	domain.AlertEvilTwin: {
		severity:  domain.SeverityCritical,
		messageEN: "Evil Twin detected! This network is spoofed.",
		messageMR: "हे वाय-फाय मुखवटा घातलेले (Duplicate) आहे. हॅकर तुमची माहिती बघत आहे.",
	},
	domain.AlertMITM: {
		severity:  domain.SeverityCritical,
		messageEN: "Man-In-The-Middle attack detected!",
		messageMR: "तुमची माहिती चोरणारा 'मध्यस्थ' आढळला आहे. व्यवहार ताबडतोब थांबवा!",
	},
	domain.AlertVulnerability: {
		severity:  domain.SeverityCritical,
		messageEN: "Open network - Data is visible like glass.",
		messageMR: "तुमची माहिती काचेसारखी आरपार दिसत आहे. कोणीही पाहू शकते.",
	},
	domain.AlertDNSHijack: {
		severity:  domain.SeverityCritical,
		messageEN: "Caution! This is not a real government website.",
		messageMR: "सावधान! ही खरी सरकारी वेबसाईट नाही. तुमचा आधार नंबर टाकू नका.",
	},
	domain.AlertVerifiedPortal: {
		severity:  domain.SeverityInfo,
		messageEN: "Verified Government Portal.",
		messageMR: "हे अधिकृत सरकारी पोर्टल आहे.",
	},
	domain.AlertPublicNetwork: {
		severity:  domain.SeverityMedium,
		messageEN: "Public/Guest Network.",
		messageMR: "सार्वजनिक नेटवर्क – सावधगिरीने वापरा.",
	},
}

// Messages the encryption tier emits for its non-OPEN branches. They share
// the VULNERABILITY category but carry their own severity and wording.
var (
	wepAlert = domain.Alert{
		Severity:  domain.SeverityHigh,
		Category:  domain.AlertVulnerability,
		MessageEN: "Old Security (WEP) - Easy to hack.",
		MessageMR: "जुन्या पद्धतीचे सुरक्षा लॉक (WEP) – हॅक करणे सोपे आहे.",
	}
	broadcastAlert = domain.Alert{
		Severity:  domain.SeverityMedium,
		Category:  domain.AlertVulnerability,
		MessageEN: "High broadcast traffic - increased sniffing risk.",
		MessageMR: "या नेटवर्कवर जास्त ट्रॅफिक आहे, माहिती चोरीचा धोका आहे.",
	}
)

// catalogAlert materializes an alert from the static catalog.
func catalogAlert(cat domain.AlertCategory) domain.Alert {
	entry := alertCatalog[cat]
	return domain.Alert{
		Severity:  entry.severity,
		Category:  cat,
		MessageEN: entry.messageEN,
		MessageMR: entry.messageMR,
	}
}
