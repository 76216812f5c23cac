package palette

// Eras in catalog order.
var Eras = []string{"primitive", "ancient", "medieval", "renaissance", "industrial", "modern", "space"}

// Era roles.
const (
	RoleSkin      = "skin"
	RoleClothing  = "clothing"
	RoleHair      = "hair"
	RoleTools     = "tools"
	RoleBuildings = "buildings"
)

// Non-era domains.
const (
	DomainTerrain = "terrain"
	DomainEmbers  = "fire/embers"
	DomainSmoke   = "fire/smoke"
	DomainGrass   = "grass"
	DomainFlowers = "flowers"
	DomainEffects = "effects"
)

// FireDomain is the domain holding core/outer/sparks for a fire intensity.
func FireDomain(intensity string) string { return "fire/" + intensity }

// TreeDomain is the domain holding trunk/foliage for a tree state.
func TreeDomain(state string) string { return "tree/" + state }

// CropDomain is the domain holding the stage colors of a crop.
func CropDomain(crop string) string { return "crops/" + crop }

var skinTones = Palette{{222, 184, 135}, {160, 132, 92}, {139, 105, 70}, {94, 65, 47}}

var commonHair = Palette{{101, 67, 33}, {139, 105, 70}, {64, 64, 64}, {32, 32, 32}}

func builtin() map[string]map[string]Palette {
	t := map[string]map[string]Palette{
		"primitive": {
			RoleSkin:      skinTones,
			RoleClothing:  {{139, 105, 70}, {160, 132, 92}, {101, 67, 33}},
			RoleHair:      commonHair,
			RoleTools:     {{169, 169, 169}, {139, 105, 70}},
			RoleBuildings: {{139, 105, 70}, {160, 132, 92}, {105, 105, 105}},
		},
		"ancient": {
			RoleSkin:      skinTones,
			RoleClothing:  {{255, 255, 255}, {139, 0, 0}, {218, 165, 32}, {128, 0, 128}},
			RoleHair:      commonHair,
			RoleTools:     {{205, 133, 63}, {192, 192, 192}, {218, 165, 32}},
			RoleBuildings: {{245, 245, 220}, {205, 133, 63}, {128, 128, 128}, {218, 165, 32}},
		},
		"medieval": {
			RoleSkin:      skinTones,
			RoleClothing:  {{128, 128, 128}, {139, 0, 0}, {0, 0, 139}, {34, 139, 34}},
			RoleHair:      {{101, 67, 33}, {139, 105, 70}, {64, 64, 64}, {255, 215, 0}},
			RoleTools:     {{192, 192, 192}, {139, 69, 19}, {105, 105, 105}},
			RoleBuildings: {{169, 169, 169}, {139, 69, 19}, {105, 105, 105}, {178, 34, 34}},
		},
		"renaissance": {
			RoleSkin:      skinTones,
			RoleClothing:  {{139, 0, 139}, {255, 215, 0}, {0, 100, 0}, {178, 34, 34}},
			RoleHair:      {{101, 67, 33}, {139, 105, 70}, {255, 255, 255}, {32, 32, 32}},
			RoleTools:     {{218, 165, 32}, {192, 192, 192}, {139, 69, 19}},
			RoleBuildings: {{255, 228, 196}, {178, 34, 34}, {245, 245, 220}, {139, 69, 19}},
		},
		"industrial": {
			RoleSkin:      skinTones,
			RoleClothing:  {{64, 64, 64}, {32, 32, 32}, {139, 0, 0}, {0, 0, 139}},
			RoleHair:      commonHair,
			RoleTools:     {{169, 169, 169}, {105, 105, 105}, {64, 64, 64}},
			RoleBuildings: {{105, 105, 105}, {169, 169, 169}, {64, 64, 64}, {32, 32, 32}},
		},
		"modern": {
			RoleSkin:      skinTones,
			RoleClothing:  {{70, 130, 180}, {255, 255, 255}, {64, 64, 64}, {255, 165, 0}},
			RoleHair:      {{101, 67, 33}, {139, 105, 70}, {255, 182, 193}, {0, 255, 127}},
			RoleTools:     {{192, 192, 192}, {64, 64, 64}, {255, 165, 0}},
			RoleBuildings: {{245, 245, 245}, {70, 130, 180}, {255, 165, 0}, {152, 251, 152}},
		},
		"space": {
			RoleSkin:      skinTones,
			RoleClothing:  {{240, 248, 255}, {169, 169, 169}, {0, 191, 255}, {255, 215, 0}},
			RoleHair:      commonHair,
			RoleTools:     {{192, 192, 192}, {255, 215, 0}, {0, 191, 255}},
			RoleBuildings: {{192, 192, 192}, {169, 169, 169}, {0, 191, 255}, {255, 215, 0}},
		},

		DomainTerrain: {
			"grass":    {{34, 139, 34}},
			"desert":   {{238, 203, 173}},
			"snow":     {{255, 250, 250}},
			"water":    {{65, 105, 225}},
			"forest":   {{0, 100, 0}},
			"mountain": {{139, 137, 137}},
			"swamp":    {{107, 142, 35}},
			"volcanic": {{178, 34, 34}},
		},

		FireDomain("ignition"): {
			"core":   {{255, 69, 0}, {255, 99, 71}, {255, 140, 0}},
			"outer":  {{255, 165, 0}, {255, 215, 0}, {255, 255, 0}},
			"sparks": {{255, 255, 255}, {255, 255, 224}, {255, 215, 0}},
		},
		FireDomain("small"): {
			"core":   {{178, 34, 34}, {255, 69, 0}, {255, 99, 71}},
			"outer":  {{255, 140, 0}, {255, 165, 0}, {255, 215, 0}},
			"sparks": {{255, 215, 0}, {255, 255, 0}, {255, 255, 255}},
		},
		FireDomain("medium"): {
			"core":   {{139, 0, 0}, {178, 34, 34}, {255, 69, 0}},
			"outer":  {{255, 99, 71}, {255, 140, 0}, {255, 165, 0}},
			"sparks": {{255, 165, 0}, {255, 215, 0}, {255, 255, 255}},
		},
		FireDomain("large"): {
			"core":   {{128, 0, 0}, {139, 0, 0}, {178, 34, 34}},
			"outer":  {{255, 69, 0}, {255, 99, 71}, {255, 140, 0}},
			"sparks": {{255, 140, 0}, {255, 165, 0}, {255, 255, 255}},
		},
		FireDomain("dying"): {
			"core":   {{105, 105, 105}, {128, 128, 128}, {169, 169, 169}},
			"outer":  {{139, 69, 19}, {160, 82, 45}, {205, 133, 63}},
			"sparks": {{255, 140, 0}, {255, 69, 0}, {178, 34, 34}},
		},
		DomainEmbers: {
			"hot":  {{255, 69, 0}, {255, 140, 0}, {255, 165, 0}},
			"warm": {{255, 165, 0}, {255, 215, 0}, {255, 255, 0}},
			"cool": {{139, 69, 19}, {160, 82, 45}, {128, 128, 128}},
		},
		DomainSmoke: {
			"thick": {{64, 64, 64}, {96, 96, 96}, {128, 128, 128}},
			"light": {{169, 169, 169}, {192, 192, 192}, {211, 211, 211}},
			"wispy": {{211, 211, 211}, {220, 220, 220}, {245, 245, 245}},
		},

		TreeDomain("healthy"): {
			"trunk":   {{101, 67, 33}, {139, 69, 19}, {160, 82, 45}},
			"foliage": {{34, 139, 34}, {0, 128, 0}, {50, 205, 50}, {144, 238, 144}},
		},
		TreeDomain("autumn"): {
			"trunk":   {{101, 67, 33}, {139, 69, 19}},
			"foliage": {{255, 165, 0}, {255, 140, 0}, {178, 34, 34}, {255, 215, 0}},
		},
		TreeDomain("dead"): {
			"trunk":   {{69, 69, 69}, {105, 105, 105}, {128, 128, 128}},
			"foliage": {{139, 69, 19}, {160, 82, 45}, {205, 133, 63}},
		},
		TreeDomain("burnt"): {
			"trunk":   {{32, 32, 32}, {64, 64, 64}, {96, 96, 96}},
			"foliage": {{0, 0, 0}, {32, 32, 32}, {64, 64, 64}},
		},

		CropDomain("wheat"): {
			"seed":    {{139, 69, 19}, {160, 82, 45}},
			"sprout":  {{34, 139, 34}, {50, 205, 50}},
			"growing": {{34, 139, 34}, {0, 128, 0}},
			"mature":  {{255, 215, 0}, {218, 165, 32}, {184, 134, 11}},
			"dead":    {{139, 69, 19}, {160, 82, 45}, {205, 133, 63}},
		},
		CropDomain("corn"): {
			"seed":    {{139, 69, 19}, {160, 82, 45}},
			"sprout":  {{34, 139, 34}, {50, 205, 50}},
			"growing": {{34, 139, 34}, {0, 128, 0}},
			"mature":  {{255, 215, 0}, {34, 139, 34}, {218, 165, 32}},
			"dead":    {{139, 69, 19}, {160, 82, 45}},
		},
		CropDomain("vegetables"): {
			"seed":    {{139, 69, 19}, {160, 82, 45}},
			"sprout":  {{50, 205, 50}, {144, 238, 144}},
			"growing": {{34, 139, 34}, {0, 128, 0}},
			"mature":  {{34, 139, 34}, {255, 99, 71}, {255, 165, 0}},
			"dead":    {{139, 69, 19}, {105, 105, 105}},
		},
		DomainGrass: {
			"healthy": {{34, 139, 34}, {50, 205, 50}, {144, 238, 144}},
			"dry":     {{255, 215, 0}, {218, 165, 32}, {184, 134, 11}},
			"dead":    {{139, 69, 19}, {160, 82, 45}, {205, 133, 63}},
			"burnt":   {{32, 32, 32}, {64, 64, 64}},
		},
		DomainFlowers: {
			"healthy": {{255, 20, 147}, {255, 105, 180}, {255, 192, 203}, {34, 139, 34}},
			"wilted":  {{139, 69, 19}, {160, 82, 45}, {105, 105, 105}},
			"dead":    {{69, 69, 69}, {105, 105, 105}},
		},

		DomainEffects: {
			// Explosion rings, hottest first.
			"explosion": {{255, 255, 255}, {255, 255, 0}, {255, 165, 0}, {255, 69, 0}, {128, 128, 128}},
			"debris":    {{255, 200, 0}},
			"sparkle":   {{255, 255, 255}, {255, 255, 200}},
			"smoke":     {{128, 128, 128}},
		},
	}
	return t
}
