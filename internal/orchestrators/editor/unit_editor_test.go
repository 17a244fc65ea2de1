package editor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/grimdank-editor/internal/entities/wargame"
	"github.com/KirkDiggler/grimdank-editor/internal/errors"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/grimdank-editor/internal/testutils/builders"
)

type UnitEditorTestSuite struct {
	suite.Suite
	sword  *wargame.Weapon
	axe    *wargame.Weapon
	maul   *wargame.Weapon
	claws  *wargame.Weapon
	rifle  *wargame.Weapon
	shield *wargame.WarGear
	editor *editor.UnitEditor
}

func TestUnitEditorSuite(t *testing.T) {
	suite.Run(t, new(UnitEditorTestSuite))
}

func (s *UnitEditorTestSuite) SetupTest() {
	s.sword = builders.Weapon("sword", "melee", 3)
	s.axe = builders.Weapon("axe", "Melee", 4)
	s.maul = builders.Weapon("maul", "MELEE", 6)
	s.claws = builders.Weapon("claws", "melee", 2)
	s.rifle = builders.Weapon("rifle", "ranged", 5)
	s.shield = builders.WarGear("shield", 3)

	unit := builders.NewUnitBuilder().WithModels(5, 10).Build()
	s.editor = editor.NewUnitEditor(unit, nil)
}

func (s *UnitEditorTestSuite) TestQuantityClampedToAmount() {
	d := s.editor.AddWeapon(s.sword, wargame.SlotMelee, 8)

	s.Equal(editor.Clamped, d.Outcome)
	s.Equal(8, d.Requested)
	s.Equal(5, d.Stored)
	s.Equal(5, s.editor.Weapons()[0].Quantity)
}

func (s *UnitEditorTestSuite) TestNegativeQuantityClampedToZero() {
	d := s.editor.AddWeapon(s.sword, wargame.SlotMelee, -2)
	s.Equal(0, d.Stored)

	d = s.editor.ChangeQuantity("sword", -9)
	s.Equal(0, d.Stored)
}

func (s *UnitEditorTestSuite) TestSlotMismatchRejected() {
	d := s.editor.AddWeapon(s.rifle, wargame.SlotMelee, 1)

	s.Equal(editor.Rejected, d.Outcome)
	s.Equal(editor.ReasonSlotMismatch, d.Reason)
	s.Contains(d.Message, "ranged")
	s.Empty(s.editor.Weapons())
	s.True(errors.IsInvalidArgument(d.Err()))
	s.True(errors.IsValidationRejection(d.Err()))
}

func (s *UnitEditorTestSuite) TestSlotNameIsCaseInsensitive() {
	d := s.editor.AddWeapon(s.sword, wargame.SlotType("Melee"), 2)
	s.True(d.Applied())

	d = s.editor.AddWeapon(s.rifle, wargame.SlotType(" RANGED "), 1)
	s.True(d.Applied())

	s.Len(s.editor.WeaponsIn(wargame.SlotMelee), 1)
	s.Len(s.editor.WeaponsIn(wargame.SlotRanged), 1)
	s.Empty(s.editor.Warnings())
}

func (s *UnitEditorTestSuite) TestUnknownSlotRejected() {
	d := s.editor.AddWeapon(s.sword, wargame.SlotType("pistol"), 1)

	s.Equal(editor.Rejected, d.Outcome)
	s.Equal(editor.ReasonSlotMismatch, d.Reason)
	s.Empty(s.editor.Weapons())
}

func (s *UnitEditorTestSuite) TestFourthWeaponOfSlotRejected() {
	s.Equal(editor.Accepted, s.editor.AddWeapon(s.sword, wargame.SlotMelee, 1).Outcome)
	s.Equal(editor.Accepted, s.editor.AddWeapon(s.axe, wargame.SlotMelee, 1).Outcome)
	s.Equal(editor.Accepted, s.editor.AddWeapon(s.maul, wargame.SlotMelee, 1).Outcome)

	d := s.editor.AddWeapon(s.claws, wargame.SlotMelee, 1)
	s.Equal(editor.Rejected, d.Outcome)
	s.Equal(editor.ReasonSlotFull, d.Reason)
	s.True(errors.IsResourceExhausted(d.Err()))
	s.Len(s.editor.WeaponsIn(wargame.SlotMelee), 3)

	// the other slot is unaffected
	s.Equal(editor.Accepted, s.editor.AddWeapon(s.rifle, wargame.SlotRanged, 1).Outcome)
}

func (s *UnitEditorTestSuite) TestRemovingWeaponFreesSlot() {
	s.editor.AddWeapon(s.sword, wargame.SlotMelee, 1)
	s.editor.AddWeapon(s.axe, wargame.SlotMelee, 1)
	s.editor.AddWeapon(s.maul, wargame.SlotMelee, 1)

	s.True(s.editor.RemoveWeapon("axe"))
	s.False(s.editor.RemoveWeapon("axe"))
	s.Equal(editor.Accepted, s.editor.AddWeapon(s.claws, wargame.SlotMelee, 1).Outcome)
}

func (s *UnitEditorTestSuite) TestDuplicateWeaponIsNoOp() {
	s.editor.AddWeapon(s.sword, wargame.SlotMelee, 2)

	d := s.editor.AddWeapon(s.sword, wargame.SlotMelee, 4)
	s.Equal(editor.Duplicate, d.Outcome)
	s.Len(s.editor.Weapons(), 1)
	s.Equal(2, s.editor.Weapons()[0].Quantity)
}

func (s *UnitEditorTestSuite) TestChangeQuantityOfAbsentWeapon() {
	d := s.editor.ChangeQuantity("ghost", 1)
	s.Equal(editor.Rejected, d.Outcome)
	s.Equal(editor.ReasonUnknown, d.Reason)
}

func (s *UnitEditorTestSuite) TestWarGear() {
	s.Equal(editor.Accepted, s.editor.AddWarGear(s.shield).Outcome)
	s.Equal(editor.Duplicate, s.editor.AddWarGear(s.shield).Outcome)

	for i := 0; i < 6; i++ {
		gear := builders.WarGear(string(rune('a'+i)), 1)
		s.Equal(editor.Accepted, s.editor.AddWarGear(gear).Outcome)
	}
	s.Len(s.editor.WarGear(), 7)

	s.True(s.editor.RemoveWarGear("shield"))
	s.False(s.editor.RemoveWarGear("shield"))
}

func (s *UnitEditorTestSuite) TestRaisingAmountRaisesMax() {
	s.editor.SetAmount(12)
	s.Equal(12, s.editor.Amount())
	s.Equal(12, s.editor.Max())
}

func (s *UnitEditorTestSuite) TestLoweringMaxLowersAmountAndReflows() {
	s.editor.AddWeapon(s.sword, wargame.SlotMelee, 5)
	s.editor.AddWeapon(s.rifle, wargame.SlotRanged, 4)

	s.editor.SetMax(3)

	s.Equal(3, s.editor.Max())
	s.Equal(3, s.editor.Amount())
	for _, w := range s.editor.Weapons() {
		s.LessOrEqual(w.Quantity, 3)
	}
}

func (s *UnitEditorTestSuite) TestLoweringAmountReflows() {
	s.editor.AddWeapon(s.sword, wargame.SlotMelee, 5)
	s.editor.SetAmount(2)
	s.Equal(2, s.editor.Weapons()[0].Quantity)

	// raising again does not restore the old quantity
	s.editor.SetAmount(5)
	s.Equal(2, s.editor.Weapons()[0].Quantity)
}

func (s *UnitEditorTestSuite) TestNegativeAmountAndMax() {
	s.editor.SetAmount(-4)
	s.Equal(0, s.editor.Amount())

	s.editor.SetMax(-1)
	s.Equal(0, s.editor.Max())
	s.Equal(0, s.editor.Amount())
}

func (s *UnitEditorTestSuite) TestQuantityWarnings() {
	s.editor.AddWeapon(s.sword, wargame.SlotMelee, 3)
	s.editor.AddWeapon(s.axe, wargame.SlotMelee, 3)
	s.editor.AddWeapon(s.rifle, wargame.SlotRanged, 5)

	s.Equal([]editor.QuantityWarning{
		{Slot: wargame.SlotMelee, Quantity: 6, Amount: 5},
	}, s.editor.Warnings())

	s.editor.ChangeQuantity("axe", 2)
	s.Empty(s.editor.Warnings())
}

func (s *UnitEditorTestSuite) TestUnitRulesUseSameClamp() {
	d := s.editor.AddRule(builders.Rule("fearless", 2, 4, 6), 0)
	s.Equal(1, d.Stored)
	s.Equal(52, s.editor.Points())
}

func (s *UnitEditorTestSuite) TestNormalizedBody() {
	s.editor.AddRule(builders.Rule("fearless", 2, 4, 6), 2)
	s.editor.AddWeapon(s.rifle, wargame.SlotRanged, 5)
	s.editor.AddWeapon(s.sword, wargame.SlotMelee, 5)
	s.editor.AddWarGear(s.shield)

	unit := s.editor.Unit()

	s.Equal("unit-test-1", unit.ID)
	s.Equal(50, unit.Points)
	s.Equal([]wargame.RuleRef{{RuleID: "fearless", Tier: 2}}, unit.Rules)
	s.Equal([]wargame.WeaponRef{
		{WeaponID: "rifle", Quantity: 5, Type: wargame.SlotRanged},
		{WeaponID: "sword", Quantity: 5, Type: wargame.SlotMelee},
	}, unit.Weapons)
	s.Equal([]string{"shield"}, unit.WarGear)
}

func (s *UnitEditorTestSuite) TestHydration() {
	unit := builders.NewUnitBuilder().
		WithModels(5, 3).
		WithRule("fearless", 0).
		WithWeapon("sword", "", 9).
		WithWeapon("sword", wargame.SlotMelee, 1).
		WithWeapon("axe", wargame.SlotMelee, 1).
		WithWeapon("maul", wargame.SlotMelee, 1).
		WithWeapon("claws", wargame.SlotMelee, 1).
		WithWeapon("mystery", "", 1).
		WithWeapon("unknown-rifle", wargame.SlotRanged, 2).
		WithWarGear("shield", "shield", "ghost").
		Build()

	catalog := wargame.NewCatalog().
		AddRules(*builders.Rule("fearless", 2, 4, 6)).
		AddWeapons(*s.sword, *s.axe, *s.maul, *s.claws).
		AddWarGear(*s.shield)

	e := editor.NewUnitEditor(unit, catalog)

	s.Equal(5, e.Amount())
	s.Equal(5, e.Max())
	s.Equal(1, e.Rules()[0].Tier)

	weapons := e.Weapons()
	s.Require().Len(weapons, 4)
	s.Equal("sword", weapons[0].WeaponID)
	s.Equal(wargame.SlotMelee, weapons[0].Slot)
	s.Equal(5, weapons[0].Quantity)
	s.Equal("unknown-rifle", weapons[3].WeaponID)
	s.Nil(weapons[3].Weapon)
	s.Len(e.WeaponsIn(wargame.SlotMelee), 3)

	gear := e.WarGear()
	s.Require().Len(gear, 2)
	s.Nil(gear[1].WarGear)
}

func (s *UnitEditorTestSuite) TestSetDetails() {
	err := s.editor.SetDetails(editor.UnitDetails{Name: "", Melee: -1})
	s.True(errors.IsInvalidArgument(err))

	s.Require().NoError(s.editor.SetDetails(editor.UnitDetails{Name: "Veterans", Type: "elite", Melee: 4}))
	s.Equal("Veterans", s.editor.Unit().Name)
	s.Equal(4, s.editor.Unit().Melee)
}

func (s *UnitEditorTestSuite) TestInvariantsHoldUnderRandomEdits() {
	weapons := []*wargame.Weapon{s.sword, s.axe, s.maul, s.claws, s.rifle,
		builders.Weapon("pistol", "ranged", 2),
		builders.Weapon("cannon", "ranged", 9),
		builders.Weapon("launcher", "ranged", 7),
	}
	slots := []wargame.SlotType{wargame.SlotMelee, wargame.SlotRanged}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		w := weapons[rng.Intn(len(weapons))]
		switch rng.Intn(5) {
		case 0:
			s.editor.AddWeapon(w, slots[rng.Intn(2)], rng.Intn(20)-5)
		case 1:
			s.editor.RemoveWeapon(w.ID)
		case 2:
			s.editor.ChangeQuantity(w.ID, rng.Intn(20)-5)
		case 3:
			s.editor.SetAmount(rng.Intn(15) - 2)
		case 4:
			s.editor.SetMax(rng.Intn(15) - 2)
		}

		s.LessOrEqual(s.editor.Amount(), s.editor.Max())
		for _, slot := range slots {
			s.LessOrEqual(len(s.editor.WeaponsIn(slot)), wargame.MaxWeaponsPerSlot)
		}
		seen := map[string]bool{}
		for _, a := range s.editor.Weapons() {
			s.False(seen[a.WeaponID])
			seen[a.WeaponID] = true
			s.GreaterOrEqual(a.Quantity, 0)
			s.LessOrEqual(a.Quantity, s.editor.Amount())
			slot, _ := a.Weapon.SlotType()
			s.Equal(slot, a.Slot)
		}
	}
}
