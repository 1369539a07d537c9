package maint

import (
	"github.com/dori/homekeep/internal/model"
)

// seasonDefaults returns the fixed default set for a seasonal list. Restore
// merges these in, adding only what is missing.
func seasonDefaults(season model.Season) []string {
	switch season {
	case model.SeasonSpring:
		return []string{
			"Clean, patch and repair: windows & screens; doorsills; walls; ceilings; fireplaces.",
			"Sweep, mop, vacuum: floors; walls; closets; attic; basement; garage.",
			"Check and clean A/C system, filters, and vents.",
			"Clean blinds, curtains, and drapes.",
			"Clean kitchen appliances inside/out; dust refrigerator coils.",
			"Inspect deck & patio for loose boards or nails.",
			"Check dryer vent (clear lint build-up).",
			"Prune trees and shrubs.",
			"Check window seals.",
			"Check/repair snow & ice damage: roof, gutters, downspouts, walks, driveways.",
			"Check roof and foundation for damage and leaks; make repairs.",
			"Check yard for winter damage: fences, compost/mulch; remove dead leaves; trim trees.",
			"Plant flower and vegetable gardens.",
			"Check outdoor leaks: faucets and hoses; pools.",
		}
	case model.SeasonSummer:
		return []string{
			"Replace batteries in smoke & carbon monoxide detectors.",
			"Plan/perform major repairs or renovations (rooms, additions, rehabs).",
			"Major painting and renovation: walls & wood trim; wallpaper; major redecoration.",
			"Major repairs of structural components (sheds, fences, decks).",
			"Check/exterminate pests: ants, wasps, hornets, termites, rodents.",
			"Repair & paint/stain fences, sheds, porches, and decks.",
			"Check & repair lawn and garden tools and equipment.",
			"Clean, repair, and set out lawn furniture and grills.",
			"Clean gutters and downspouts.",
			"Service air conditioning unit (change filters, clean coils).",
			"Check outdoor faucets for leaks; turn on water and check flow.",
			"Fertilize the lawn.",
		}
	case model.SeasonAutumn:
		return []string{
			"Check and clean heating system, filters, and vents.",
			"Remove and store screens; install storm windows.",
			"Caulk & weather-strip windows/doors; add insulation if needed.",
			"Cover or remove window A/C units.",
			"Clean gutters and downspouts.",
			"Prepare lawn and garden for winter: rake/mulch leaves; trim trees/shrubs.",
			"Clean and store lawn & garden tools; outdoor sports equipment.",
			"Check and repair chimneys and flues; shut off outdoor faucets and hoses.",
			"Drain outdoor faucets; blow out irrigation (where applicable).",
		}
	case model.SeasonWinter:
		return []string{
			"Replace batteries in smoke and carbon monoxide detectors.",
			"Add insulation/cover windows: plastic sheeting; wrap water heater; wrap exposed pipes.",
			"Review and update maintenance schedule for next year.",
			"Check insulation in attic.",
			"Test smoke and carbon monoxide detectors.",
			"Clean fireplace and chimney.",
			"Check for ice dams on roof.",
		}
	case model.SeasonPool:
		return []string{
			"Skim surface & empty skimmer baskets",
			"Brush walls, steps, and tile line",
			"Test chlorine & pH; adjust as needed",
			"Check pump basket & pressure gauge",
			"Backwash or clean filter (as required)",
			"Top off water level",
			"Inspect equipment (pump/heater/valves) for leaks",
		}
	}
	return nil
}

var hurricaneDefaults = []string{
	"Stock water & non-perishable food",
	"Flashlights, batteries, first-aid kit",
	"Secure outdoor furniture & equipment",
	"Verify evacuation routes & contacts",
}

var toolDefaults = []string{
	"Flashlight and batteries",
	"Flat-head and Phillips screwdrivers",
	"Work gloves and safety goggles",
	"Claw hammer",
	"Metal rasp",
	"Wire cutter",
	"Plunger",
	"Pliers",
	"Sanding blocks and sandpaper",
	"Adjustable wrench",
	"Handsaw",
	"Socket wrench set",
	"Nails, screws and bolts",
}

var usefulLifeDefaults = []model.UsefulLifeRow{
	{Item: "Clothes washer or dryer", Life: "≈ 10 years"},
	{Item: "Water heater", Life: "≈ 11–14 years"},
	{Item: "Furnace", Life: "≈ 18 years"},
	{Item: "Furnace w/ heat pump", Life: "≈ 15 years"},
	{Item: "Central air conditioner", Life: "≈ 15 years"},
	{Item: "Humidifier", Life: "≈ 8 years"},
	{Item: "Dishwasher", Life: "≈ 10 years"},
	{Item: "Range / Oven", Life: "≈ 18–20 years"},
	{Item: "Refrigerator", Life: "≈ 14–19 years"},
	{Item: "Freezer", Life: "≈ 16 years"},
	{Item: "Garbage disposal", Life: "≈ 10 years"},
	{Item: "Interior paint", Life: "≈ 5–10 years"},
	{Item: "Exterior paint", Life: "≈ 7–10 years"},
	{Item: "Wallpaper", Life: "≈ 7 years"},
	{Item: "Carpeting", Life: "≈ 5 years"},
}
