package domain

// Category is an enumerated expense category code. The set is fixed: every
// code routes to exactly one T2125 line through LineForCategory, and the
// meal, motor-vehicle and home-office class sets below drive the
// category-specific deduction rules.
type Category string

const (
	CategoryAdvertising     Category = "advertising"
	CategoryMeals           Category = "meals"
	CategoryInsurance       Category = "insurance"
	CategoryBankFees        Category = "bank_fees"
	CategoryLicences        Category = "licences"
	CategoryOffice          Category = "office"
	CategorySupplies        Category = "supplies"
	CategoryAccounting      Category = "accounting"
	CategoryManagementFees  Category = "management_fees"
	CategoryRent            Category = "rent"
	CategoryRepairs         Category = "repairs"
	CategorySalaries        Category = "salaries"
	CategoryPropertyTax     Category = "property_tax"
	CategoryTravel          Category = "travel"
	CategoryUtilities       Category = "utilities"
	CategoryPhone           Category = "phone"
	CategoryFuelOther       Category = "fuel_other"
	CategoryDelivery        Category = "delivery"
	CategoryOther           Category = "other"
	CategoryHomeOffice      Category = "home_office"

	// Motor-vehicle categories. These all land on line 9281 and are scaled
	// by the mileage-derived business-use percentage.
	CategoryFuel             Category = "fuel"
	CategoryVehicleMaint     Category = "vehicle_maintenance"
	CategoryVehicleInsurance Category = "vehicle_insurance"
	CategoryVehicleLicence   Category = "vehicle_licence"
	CategoryVehicleInterest  Category = "vehicle_loan_interest"
	CategoryVehicleLease     Category = "vehicle_lease"
	CategoryCarWash          Category = "car_wash"
	CategoryParking          Category = "parking"
	CategoryTolls            Category = "tolls"
)

// LineKey identifies a T2125 expense line in the serialized report. These
// string keys are the external contract consumed by the CSV/HTML/PDF
// exporters and must not be renamed.
type LineKey string

const (
	Line8521Advertising     LineKey = "line8521_advertising"
	Line8523Meals           LineKey = "line8523_mealsEntertainment"
	Line8690Insurance       LineKey = "line8690_insurance"
	Line8710Interest        LineKey = "line8710_interestBankCharges"
	Line8760Licences        LineKey = "line8760_businessTaxesLicences"
	Line8810Office          LineKey = "line8810_officeExpenses"
	Line8811Supplies        LineKey = "line8811_supplies"
	Line8860Professional    LineKey = "line8860_professionalFees"
	Line8871Management      LineKey = "line8871_managementFees"
	Line8910Rent            LineKey = "line8910_rent"
	Line8960Repairs         LineKey = "line8960_repairsMaintenance"
	Line9060Salaries        LineKey = "line9060_salaries"
	Line9180PropertyTax     LineKey = "line9180_propertyTaxes"
	Line9200Travel          LineKey = "line9200_travel"
	Line9220Utilities       LineKey = "line9220_utilities"
	Line9224Fuel            LineKey = "line9224_fuel"
	Line9270Other           LineKey = "line9270_otherExpenses"
	Line9275Delivery        LineKey = "line9275_deliveryFreight"
	Line9281MotorVehicle    LineKey = "line9281_motorVehicle"
	Line9936CCA             LineKey = "line9936_cca"
	Line9945BusinessUseHome LineKey = "line9945_businessUseOfHome"
)

// lineForCategory is the fixed category -> line routing table. Category
// codes absent from this table contribute nothing to Part 4 totals but
// still appear in the expense audit trail with their raw code.
var lineForCategory = map[Category]LineKey{
	CategoryAdvertising:      Line8521Advertising,
	CategoryMeals:            Line8523Meals,
	CategoryInsurance:        Line8690Insurance,
	CategoryBankFees:         Line8710Interest,
	CategoryLicences:         Line8760Licences,
	CategoryOffice:           Line8810Office,
	CategorySupplies:         Line8811Supplies,
	CategoryAccounting:       Line8860Professional,
	CategoryManagementFees:   Line8871Management,
	CategoryRent:             Line8910Rent,
	CategoryRepairs:          Line8960Repairs,
	CategorySalaries:         Line9060Salaries,
	CategoryPropertyTax:      Line9180PropertyTax,
	CategoryTravel:           Line9200Travel,
	CategoryUtilities:        Line9220Utilities,
	CategoryPhone:            Line9220Utilities,
	CategoryFuelOther:        Line9224Fuel,
	CategoryDelivery:         Line9275Delivery,
	CategoryOther:            Line9270Other,
	CategoryHomeOffice:       Line9945BusinessUseHome,
	CategoryFuel:             Line9281MotorVehicle,
	CategoryVehicleMaint:     Line9281MotorVehicle,
	CategoryVehicleInsurance: Line9281MotorVehicle,
	CategoryVehicleLicence:   Line9281MotorVehicle,
	CategoryVehicleInterest:  Line9281MotorVehicle,
	CategoryVehicleLease:     Line9281MotorVehicle,
	CategoryCarWash:          Line9281MotorVehicle,
	CategoryParking:          Line9281MotorVehicle,
	CategoryTolls:            Line9281MotorVehicle,
}

// categoryLabels are the human-readable names used in breakdowns and the
// expense audit trail.
var categoryLabels = map[Category]string{
	CategoryAdvertising:      "Advertising",
	CategoryMeals:            "Meals & entertainment",
	CategoryInsurance:        "Insurance",
	CategoryBankFees:         "Interest & bank charges",
	CategoryLicences:         "Business taxes & licences",
	CategoryOffice:           "Office expenses",
	CategorySupplies:         "Supplies",
	CategoryAccounting:       "Professional fees",
	CategoryManagementFees:   "Management & administration",
	CategoryRent:             "Rent",
	CategoryRepairs:          "Repairs & maintenance",
	CategorySalaries:         "Salaries & wages",
	CategoryPropertyTax:      "Property taxes",
	CategoryTravel:           "Travel",
	CategoryUtilities:        "Utilities",
	CategoryPhone:            "Phone & data",
	CategoryFuelOther:        "Fuel (non-vehicle)",
	CategoryDelivery:         "Delivery & freight",
	CategoryOther:            "Other expenses",
	CategoryHomeOffice:       "Home office",
	CategoryFuel:             "Vehicle fuel",
	CategoryVehicleMaint:     "Vehicle maintenance",
	CategoryVehicleInsurance: "Vehicle insurance",
	CategoryVehicleLicence:   "Vehicle licence & registration",
	CategoryVehicleInterest:  "Vehicle loan interest",
	CategoryVehicleLease:     "Vehicle lease",
	CategoryCarWash:          "Car washes",
	CategoryParking:          "Parking",
	CategoryTolls:            "Tolls",
}

// motorVehicleCategories is the fixed subset whose deductible amounts are
// pooled on line 9281 and scaled by the business-use percentage.
var motorVehicleCategories = map[Category]bool{
	CategoryFuel:             true,
	CategoryVehicleMaint:     true,
	CategoryVehicleInsurance: true,
	CategoryVehicleLicence:   true,
	CategoryVehicleInterest:  true,
	CategoryVehicleLease:     true,
	CategoryCarWash:          true,
	CategoryParking:          true,
	CategoryTolls:            true,
}

// mealCategories is the class subject to the CRA 50% limit.
var mealCategories = map[Category]bool{
	CategoryMeals: true,
}

// homeOfficeCategories is the class scaled by the home-office-use
// percentage.
var homeOfficeCategories = map[Category]bool{
	CategoryHomeOffice: true,
}

// LineForCategory resolves a category to its T2125 line. The second return
// is false for unmapped codes.
func LineForCategory(c Category) (LineKey, bool) {
	k, ok := lineForCategory[c]
	return k, ok
}

// Label returns the display label for a category, falling back to the raw
// code for unknown categories.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// IsMotorVehicle reports whether the category belongs to the line 9281
// motor-vehicle pool.
func (c Category) IsMotorVehicle() bool { return motorVehicleCategories[c] }

// IsMeal reports whether the category is subject to the 50% meals limit.
func (c Category) IsMeal() bool { return mealCategories[c] }

// IsHomeOffice reports whether the category is home-office eligible.
func (c Category) IsHomeOffice() bool { return homeOfficeCategories[c] }

// Categories returns every known category code. Primarily for validation
// and exhaustiveness checks in tests.
func Categories() []Category {
	out := make([]Category, 0, len(lineForCategory))
	for c := range lineForCategory {
		out = append(out, c)
	}
	return out
}
