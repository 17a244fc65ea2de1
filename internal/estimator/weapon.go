package estimator

import (
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
)

const (
	// attacks value assumed for a variable "X" profile
	variableAttacks = 3

	rangeStep        = 6.0
	maxRangeScore    = 8.0
	rangedAttackRate = 2.0
	maxRangedAttacks = 10.0
	rangedAPRate     = 3.0
	maxRangedAP      = 15.0
	meleeAttackRate  = 3.0
	maxMeleeAttacks  = 15.0
	meleeAPRate      = 4.0
	maxMeleeAP       = 20.0
)

// WeaponInput is the raw weapon profile as typed into the weapon form
type WeaponInput struct {
	Type    string `json:"type"`
	Range   int    `json:"range"`
	Attacks string `json:"attacks"`
	AP      string `json:"ap"`
}

// WeaponInputFrom reads the estimator inputs off a weapon
func WeaponInputFrom(w *wargame.Weapon) WeaponInput {
	return WeaponInput{
		Type:    w.Type,
		Range:   w.Range,
		Attacks: w.Attacks.String(),
		AP:      w.AP.String(),
	}
}

// WeaponEstimate is a suggested base cost with its per-stat scores
type WeaponEstimate struct {
	Slot         wargame.SlotType `json:"slot"`
	Range        int              `json:"range"`
	Attacks      int              `json:"attacks"`
	AP           int              `json:"ap"`
	RangeScore   float64          `json:"rangeScore"`
	AttacksScore float64          `json:"attacksScore"`
	APScore      float64          `json:"apScore"`
	Points       int              `json:"points"`
}

// EstimateWeapon scores a weapon profile. Unknown types are scored as ranged.
func EstimateWeapon(in WeaponInput) *WeaponEstimate {
	slot, ok := wargame.ParseSlotType(in.Type)
	if !ok {
		slot = wargame.SlotRanged
	}

	est := &WeaponEstimate{
		Slot:    slot,
		Attacks: ParseAttacks(in.Attacks),
		AP:      ParseAP(in.AP),
	}

	switch slot {
	case wargame.SlotMelee:
		est.AttacksScore = math.Min(float64(est.Attacks)*meleeAttackRate, maxMeleeAttacks)
		est.APScore = math.Min(float64(est.AP)*meleeAPRate, maxMeleeAP)
	default:
		est.Range = max(0, min(in.Range, wargame.MaxWeaponRange))
		est.RangeScore = math.Min(float64(est.Range)/rangeStep, maxRangeScore)
		est.AttacksScore = math.Min(float64(est.Attacks)*rangedAttackRate, maxRangedAttacks)
		est.APScore = math.Min(float64(est.AP)*rangedAPRate, maxRangedAP)
	}

	est.Points = max(1, int(math.Round(est.RangeScore+est.AttacksScore+est.APScore)))
	return est
}

// ParseAttacks reads an attacks stat. "X" counts as 3, anything unreadable
// as 1, and the result is never below 1.
func ParseAttacks(s string) int {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "x") {
		return variableAttacks
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return max(1, v)
}

// ParseAP reads an armour-piercing stat, flooring at 0
func ParseAP(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return max(0, v)
}
