package models

// Dataset column names. The misspelt "accomodation_type" is the header used
// by the published dataset and is kept as-is.
const (
	ColCampus            = "preferred_campus"
	ColAccommodationType = "accomodation_type"
	ColRoomType          = "room_type"
	ColMonthlyBudget     = "monthly_budget"
	ColSafetyPriority    = "safety_priority"
	ColDistancePriority  = "distance_priority"

	ColHighSpeedWifi     = "high_speed_wifi"
	ColSecureParking     = "secure_parking"
	ColLaundryFacilities = "laundry_facilities"
	ColKitchenAccess     = "kitchen_access"
	ColSecurity247       = "security_24_7"
	ColGymAccess         = "gym_access"
	ColStudyAreas        = "study_areas"
	ColPublicTransport   = "public_transport"
)

// CategoricalColumns are label-encoded, one codec per column.
var CategoricalColumns = []string{
	ColCampus,
	ColAccommodationType,
	ColRoomType,
	ColSafetyPriority,
	ColDistancePriority,
}

// AmenityColumns are the 0/1 flags, in dataset order.
var AmenityColumns = []string{
	ColHighSpeedWifi,
	ColSecureParking,
	ColLaundryFacilities,
	ColKitchenAccess,
	ColSecurity247,
	ColGymAccess,
	ColStudyAreas,
	ColPublicTransport,
}

// FeatureColumns is the fixed order of the 14 feature vector dimensions.
var FeatureColumns = []string{
	ColCampus,
	ColAccommodationType,
	ColRoomType,
	ColMonthlyBudget,
	ColSafetyPriority,
	ColDistancePriority,
	ColHighSpeedWifi,
	ColSecureParking,
	ColLaundryFacilities,
	ColKitchenAccess,
	ColSecurity247,
	ColGymAccess,
	ColStudyAreas,
	ColPublicTransport,
}

// RequiredColumns lists every column a dataset file must carry.
var RequiredColumns = append([]string(nil), FeatureColumns...)

// RawListing holds one dataset row exactly as read from the file, keyed by
// column name. It is cleaned into a Listing before use.
type RawListing struct {
	Line   int
	Values map[string]string
}

// Amenities are the eight binary facility flags of a listing or a query.
type Amenities struct {
	HighSpeedWifi     bool `json:"high_speed_wifi" yaml:"high_speed_wifi"`
	SecureParking     bool `json:"secure_parking" yaml:"secure_parking"`
	LaundryFacilities bool `json:"laundry_facilities" yaml:"laundry_facilities"`
	KitchenAccess     bool `json:"kitchen_access" yaml:"kitchen_access"`
	Security247       bool `json:"security_24_7" yaml:"security_24_7"`
	GymAccess         bool `json:"gym_access" yaml:"gym_access"`
	StudyAreas        bool `json:"study_areas" yaml:"study_areas"`
	PublicTransport   bool `json:"public_transport" yaml:"public_transport"`
}

// Flags returns the amenities in AmenityColumns order.
func (a Amenities) Flags() []bool {
	return []bool{
		a.HighSpeedWifi,
		a.SecureParking,
		a.LaundryFacilities,
		a.KitchenAccess,
		a.Security247,
		a.GymAccess,
		a.StudyAreas,
		a.PublicTransport,
	}
}

// Set switches the named amenity on or off. It reports false for an unknown name.
func (a *Amenities) Set(column string, on bool) bool {
	switch column {
	case ColHighSpeedWifi:
		a.HighSpeedWifi = on
	case ColSecureParking:
		a.SecureParking = on
	case ColLaundryFacilities:
		a.LaundryFacilities = on
	case ColKitchenAccess:
		a.KitchenAccess = on
	case ColSecurity247:
		a.Security247 = on
	case ColGymAccess:
		a.GymAccess = on
	case ColStudyAreas:
		a.StudyAreas = on
	case ColPublicTransport:
		a.PublicTransport = on
	default:
		return false
	}
	return true
}

// Attributes is the shape shared by a stored listing and a user query.
type Attributes struct {
	PreferredCampus   string  `json:"preferred_campus" yaml:"preferred_campus"`
	AccommodationType string  `json:"accomodation_type" yaml:"accomodation_type"`
	RoomType          string  `json:"room_type" yaml:"room_type"`
	MonthlyBudget     float64 `json:"monthly_budget" yaml:"monthly_budget"`
	SafetyPriority    string  `json:"safety_priority" yaml:"safety_priority"`
	DistancePriority  string  `json:"distance_priority" yaml:"distance_priority"`
	Amenities         `yaml:",inline"`
}

// Category returns the value of a categorical column, or "" for an unknown one.
func (a Attributes) Category(column string) string {
	switch column {
	case ColCampus:
		return a.PreferredCampus
	case ColAccommodationType:
		return a.AccommodationType
	case ColRoomType:
		return a.RoomType
	case ColSafetyPriority:
		return a.SafetyPriority
	case ColDistancePriority:
		return a.DistancePriority
	}
	return ""
}

// SetCategory assigns a categorical column. It reports false for an unknown name.
func (a *Attributes) SetCategory(column, value string) bool {
	switch column {
	case ColCampus:
		a.PreferredCampus = value
	case ColAccommodationType:
		a.AccommodationType = value
	case ColRoomType:
		a.RoomType = value
	case ColSafetyPriority:
		a.SafetyPriority = value
	case ColDistancePriority:
		a.DistancePriority = value
	default:
		return false
	}
	return true
}

// Listing is one cleaned, immutable dataset row. ID is its position in the
// loaded listing set.
type Listing struct {
	ID         int64 `json:"id" yaml:"id"`
	Attributes `yaml:",inline"`
}

// Query holds the raw preferences of a prospective student.
type Query struct {
	Attributes `yaml:",inline"`
}

// Recommendation is one ranked match returned to the caller.
type Recommendation struct {
	Rank     int      `json:"rank" yaml:"rank"`
	Distance float64  `json:"distance" yaml:"distance"`
	Listing  *Listing `json:"listing" yaml:"listing"`
}

// DatasetSummary holds descriptive statistics over the loaded listings.
type DatasetSummary struct {
	TotalListings    int
	AverageBudget    float64
	MinBudget        float64
	MaxBudget        float64
	Cheapest         *Listing
	ListingsByCampus map[string]int
	ListingsByType   map[string]int
	AmenityCoverage  map[string]float64
}
