package metric

import (
	"testing"

	"dinner-planner/internal/recipe"

	"github.com/stretchr/testify/assert"
)

func TestConvertIngredient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"CupsToMillilitres", "2 cups flour", "480ml flour"},
		{"PoundToGrams", "1 lb butter", "454g butter"},
		{"SmallVolumeRoundsToFive", "1 tsp salt", "5ml salt"},
		{"HalfTeaspoonRoundsUp", "1/2 tsp cumin", "5ml cumin"},
		{"OunceUnderFifty", "1 oz parmesan", "30g parmesan"},
		{"OunceOverFifty", "3 oz cheddar", "85g cheddar"},
		{"LargeVolumeInLitres", "5 cups water", "1.2L water"},
		{"RoundLitreDropsDecimal", "1 gallon milk", "3.8L milk"},
		{"LargeWeightInKilograms", "3 lbs potatoes", "1.4kg potatoes"},
		{"RangeIsAveraged", "2-3 cups rice", "600ml rice"},
		{"SpacedRange", "2 - 3 cups rice", "600ml rice"},
		{"MixedNumber", "1 1/2 cups sugar", "360ml sugar"},
		{"DecimalComma", "1,5 cups stock", "360ml stock"},
		{"NoSpaceBeforeUnit", "2tbsp olive oil", "30ml olive oil"},
		{"CaseInsensitive", "2 Cups Milk", "480ml Milk"},
		{"FluidOunceWithDot", "4 fl. oz cream", "120ml cream"},
		{"StickOfButter", "1 stick butter", "113g butter"},
		{"PacketRoundsToFive", "2 packets yeast", "15g yeast"},
		{"EggDefault", "2 egg", "100g egg"},
		{"LargeEggBeatsEgg", "2 large egg", "120g egg"},
		{"OnionDefault", "1 onion", "150g onion"},
		{"GarlicCloveKeepsGarlic", "1 garlic clove", "5g garlic"},
		{"PluralGarlicCloves", "3 garlic cloves", "10g garlic"},
		{"CloveOfGarlic", "2 clove of garlic", "5g garlic"},
		{"PluralEggs", "2 eggs", "100g egg"},
		{"PluralLargeOnions", "2 large onions", "400g onion"},
		{"PluralPotatoesInKilograms", "6 potatoes", "1.2kg potato"},
		{"FractionDefault", "1/2 onion", "75g onion"},
		{"RangeDefault", "1-2 onion", "225g onion"},
		{"MixedNumberDefault", "1 1/2 onion", "225g onion"},
		{"DecimalDefault", "1.5 egg", "75g egg"},
		{"EggplantIsNotEgg", "2 eggplants", "2 eggplants"},
		{"RoundsUpToKilogram", "35.27 oz chocolate", "1kg chocolate"},
		{"BareCIsNotCup", "bake at 200 c", "bake at 200 c"},
		{"BarePtUntouched", "1 pt cream", "1 pt cream"},
		{"MetricUntouched", "500g chicken breast", "500g chicken breast"},
		{"UnknownUnitUntouched", "2 handfuls spinach", "2 handfuls spinach"},
		{"NoQuantityUntouched", "oil for frying", "oil for frying"},
		{"CanIsNotCup", "1 can tomatoes", "1 can tomatoes"},
		{"WhitespaceCollapsed", "  2   cups   flour ", "480ml flour"},
		{"MultipleMeasurements", "1 cup milk plus 2 tbsp", "240ml milk plus 30ml"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertIngredient(tt.in))
		})
	}
}

func TestConvertIngredient_Idempotent(t *testing.T) {
	inputs := []string{
		"2 cups flour",
		"1 lb butter",
		"3 lbs potatoes",
		"5 cups water",
		"2 large egg",
		"3 garlic cloves",
		"1/2 onion",
		"1-2 onion",
		"1 1/2 onion",
		"6 potatoes",
		"35.27 oz chocolate",
		"1/2 tsp cumin",
		"1.5L chicken stock",
		"4 fish fillets (600g)",
		"oil for frying",
	}

	for _, in := range inputs {
		once := ConvertIngredient(in)
		assert.Equal(t, once, ConvertIngredient(once), in)
	}
}

func TestConvertRecipe(t *testing.T) {
	original := recipe.Recipe{
		Name:        "Pancakes",
		Ingredients: []string{"2 cups flour", "2 egg", "1 cup milk"},
	}

	converted := ConvertRecipe(original)

	assert.Equal(t, []string{"480ml flour", "100g egg", "240ml milk"}, converted.Ingredients)
	assert.Equal(t, "2 cups flour", original.Ingredients[0], "input recipe must not be modified")
	assert.Equal(t, original.Name, converted.Name)
}
