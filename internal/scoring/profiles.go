package scoring

// profile is one activity's rule table. Deductions are expressed in score
// points off the perfect base of 10:
//
//	rainAmount:  points at 20mm+ accumulated precipitation
//	rainProb:    points at 100% precipitation probability
//	coldSlope:   points per °C below the ideal band
//	heatSlope:   points per °C above the ideal band
//	windSlope:   points per 10 km/h of sustained wind above windFrom
//	gustSlope:   points per 10 km/h of gusts above gustFrom
//	cloudWeight: points at full overcast
//	sunBonus:    points added back at full sun
//
// Rain weights must stay non-negative for every activity, indoor types
// included: rain is never rewarded.
type profile struct {
	tempLo, tempHi       float64
	coldSlope, heatSlope float64
	rainAmount           float64
	rainProb             float64
	windFrom             float64
	windSlope            float64
	gustFrom             float64
	gustSlope            float64
	cloudWeight          float64
	sunBonus             float64
	visFloor             float64 // meters; below this, visibility deducts
	base                 float64 // starting score, 10 for outdoor types
	outdoor              bool
}

// profileFor dispatches on the activity with an exhaustive match. Unknown
// values degrade to a neutral outdoor profile so rendering never fails on
// an activity the rule tables don't know yet.
func profileFor(a ActivityType) profile {
	switch a {
	case ActivityRunning:
		return profile{
			tempLo: 8, tempHi: 18, coldSlope: 0.25, heatSlope: 0.35,
			rainAmount: 3.5, rainProb: 1.5,
			windFrom: 20, windSlope: 0.5, gustFrom: 45, gustSlope: 0.4,
			cloudWeight: 0.5, sunBonus: 0.5, visFloor: 200,
			base: 10, outdoor: true,
		}
	case ActivityCycling:
		return profile{
			tempLo: 12, tempHi: 22, coldSlope: 0.3, heatSlope: 0.3,
			rainAmount: 4.5, rainProb: 2,
			windFrom: 15, windSlope: 1.0, gustFrom: 40, gustSlope: 0.6,
			cloudWeight: 0.5, sunBonus: 0.5, visFloor: 500,
			base: 10, outdoor: true,
		}
	case ActivityWalking:
		return profile{
			tempLo: 10, tempHi: 22, coldSlope: 0.2, heatSlope: 0.25,
			rainAmount: 3, rainProb: 1.5,
			windFrom: 25, windSlope: 0.5, gustFrom: 50, gustSlope: 0.3,
			cloudWeight: 0.5, sunBonus: 1.0, visFloor: 200,
			base: 10, outdoor: true,
		}
	case ActivityBBQ:
		return profile{
			tempLo: 16, tempHi: 28, coldSlope: 0.35, heatSlope: 0.2,
			rainAmount: 6, rainProb: 3,
			windFrom: 20, windSlope: 0.8, gustFrom: 40, gustSlope: 0.5,
			cloudWeight: 1.0, sunBonus: 1.5,
			base: 10, outdoor: true,
		}
	case ActivityBeach:
		return profile{
			tempLo: 22, tempHi: 30, coldSlope: 0.5, heatSlope: 0.25,
			rainAmount: 5, rainProb: 3,
			windFrom: 25, windSlope: 0.6, gustFrom: 45, gustSlope: 0.4,
			cloudWeight: 3.0, sunBonus: 2.0,
			base: 10, outdoor: true,
		}
	case ActivitySailing:
		// Wind is handled by the wind-window rule, not the threshold rule.
		return profile{
			tempLo: 12, tempHi: 26, coldSlope: 0.2, heatSlope: 0.15,
			rainAmount: 3.5, rainProb: 1.5,
			gustFrom: 55, gustSlope: 0.8,
			cloudWeight: 0.5, sunBonus: 0.3, visFloor: 1000,
			base: 10, outdoor: true,
		}
	case ActivityGardening:
		return profile{
			tempLo: 12, tempHi: 24, coldSlope: 0.25, heatSlope: 0.25,
			rainAmount: 2.5, rainProb: 1.5,
			windFrom: 25, windSlope: 0.5, gustFrom: 50, gustSlope: 0.3,
			cloudWeight: 0.5, sunBonus: 1.0,
			base: 10, outdoor: true,
		}
	case ActivityStargazing:
		// Cloud cover and daylight are gating rules; cloudWeight stays 0
		// so the gate alone owns the sky penalty.
		return profile{
			tempLo: 5, tempHi: 20, coldSlope: 0.15, heatSlope: 0.15,
			rainAmount: 4, rainProb: 2,
			windFrom: 20, windSlope: 0.4, gustFrom: 45, gustSlope: 0.3,
			visFloor: 5000,
			base: 10, outdoor: true,
		}
	case ActivityGolf:
		return profile{
			tempLo: 14, tempHi: 24, coldSlope: 0.3, heatSlope: 0.3,
			rainAmount: 4.5, rainProb: 2.5,
			windFrom: 15, windSlope: 0.9, gustFrom: 35, gustSlope: 0.6,
			cloudWeight: 0.5, sunBonus: 0.8, visFloor: 1000,
			base: 10, outdoor: true,
		}
	case ActivityPadel:
		return profile{
			tempLo: 12, tempHi: 24, coldSlope: 0.3, heatSlope: 0.3,
			rainAmount: 5, rainProb: 2.5,
			windFrom: 15, windSlope: 0.8, gustFrom: 35, gustSlope: 0.5,
			cloudWeight: 0.3, sunBonus: 0.5,
			base: 10, outdoor: true,
		}
	case ActivityFieldSports:
		return profile{
			tempLo: 8, tempHi: 22, coldSlope: 0.25, heatSlope: 0.3,
			rainAmount: 3.5, rainProb: 1.5,
			windFrom: 25, windSlope: 0.5, gustFrom: 50, gustSlope: 0.4,
			cloudWeight: 0.3, sunBonus: 0.5,
			base: 10, outdoor: true,
		}
	case ActivityTennis:
		return profile{
			tempLo: 15, tempHi: 26, coldSlope: 0.3, heatSlope: 0.3,
			rainAmount: 5.5, rainProb: 2.5,
			windFrom: 15, windSlope: 0.8, gustFrom: 35, gustSlope: 0.5,
			cloudWeight: 0.3, sunBonus: 0.5,
			base: 10, outdoor: true,
		}
	case ActivityHome:
		// Indoor: weather barely matters. Extreme heat still hurts homes
		// without cooling.
		return profile{
			tempLo: -50, tempHi: 27, heatSlope: 0.1,
			base: 6.5,
		}
	case ActivityWork:
		return profile{
			tempLo: -50, tempHi: 28, heatSlope: 0.05,
			base: 6.0,
		}
	default:
		return neutralProfile()
	}
}

// neutralProfile is the fallback for activity types the tables don't
// know: a mild generic outdoor rule set.
func neutralProfile() profile {
	return profile{
		tempLo: 10, tempHi: 24, coldSlope: 0.2, heatSlope: 0.2,
		rainAmount: 3, rainProb: 1.5,
		windFrom: 25, windSlope: 0.5, gustFrom: 50, gustSlope: 0.3,
		cloudWeight: 0.3, sunBonus: 0.3,
		base: 10, outdoor: true,
	}
}
