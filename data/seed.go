package data

import "github.com/medfinder/medfinder-api/entities"

// defaultDrugKey names the catalog entry used when resolution matches
// nothing. The "always answer" policy keeps downstream price and insurance
// computation total.
const defaultDrugKey = "lisinopril"

// defaultDrugRecord is the built-in copy of the default entry, used only if
// an admin deletes the default from the catalog itself.
var defaultDrugRecord = entities.DrugRecord{
	GenericName: "lisinopril",
	BrandName:   "Prinivil",
	RxNormID:    "29046",
	AtcCode:     "C09AA03",
}

// seedDrugs is the initial catalog, in insertion order. Resolution and
// extraction both depend on this ordering.
var seedDrugs = []entities.DrugRecord{
	{GenericName: "lisinopril", BrandName: "Prinivil", RxNormID: "29046", AtcCode: "C09AA03"},
	{GenericName: "atorvastatin", BrandName: "Lipitor", RxNormID: "83367", AtcCode: "C10AA05"},
	{GenericName: "metformin", BrandName: "Glucophage", RxNormID: "6809", AtcCode: "A10BA02"},
	{GenericName: "amlodipine", BrandName: "Norvasc", RxNormID: "17767", AtcCode: "C08CA01"},
	{GenericName: "omeprazole", BrandName: "Prilosec", RxNormID: "7646", AtcCode: "A02BC01"},
}

// seedPharmacies returns the static pharmacy reference list.
func seedPharmacies() []entities.Pharmacy {
	return []entities.Pharmacy{
		{ID: 1, Name: "Apollo Pharmacy", City: "Delhi", Area: "Connaught Place", Lat: 28.6139, Lng: 77.2090, Open: true},
		{ID: 2, Name: "MedPlus", City: "Delhi", Area: "Karol Bagh", Lat: 28.6519, Lng: 77.1900, Open: true},
		{ID: 3, Name: "Netmeds", City: "Delhi", Area: "Lajpat Nagar", Lat: 28.5677, Lng: 77.2431, Open: true},
		{ID: 4, Name: "1mg Pharmacy", City: "Delhi", Area: "Dwarka", Lat: 28.5921, Lng: 77.0460, Open: true},
		{ID: 5, Name: "Apollo 24/7", City: "Delhi", Area: "Rohini", Lat: 28.7495, Lng: 77.0736, Open: true},
		{ID: 6, Name: "Apollo Pharmacy", City: "Mumbai", Area: "Andheri", Lat: 19.1136, Lng: 72.8697, Open: true},
		{ID: 7, Name: "MedPlus", City: "Mumbai", Area: "Bandra", Lat: 19.0596, Lng: 72.8295, Open: true},
		{ID: 8, Name: "Netmeds", City: "Mumbai", Area: "Powai", Lat: 19.1197, Lng: 72.9078, Open: false},
		{ID: 9, Name: "1mg Pharmacy", City: "Mumbai", Area: "Thane", Lat: 19.2183, Lng: 72.9781, Open: true},
		{ID: 10, Name: "Wellness Forever", City: "Mumbai", Area: "Borivali", Lat: 19.2403, Lng: 72.8593, Open: true},
		{ID: 11, Name: "Apollo Pharmacy", City: "Bangalore", Area: "Koramangala", Lat: 12.9352, Lng: 77.6245, Open: true},
		{ID: 12, Name: "MedPlus", City: "Bangalore", Area: "Indiranagar", Lat: 12.9716, Lng: 77.6412, Open: true},
		{ID: 13, Name: "Netmeds", City: "Bangalore", Area: "Whitefield", Lat: 12.9698, Lng: 77.7499, Open: true},
		{ID: 14, Name: "1mg Pharmacy", City: "Bangalore", Area: "Electronic City", Lat: 12.8456, Lng: 77.6603, Open: true},
		{ID: 15, Name: "Apollo 24/7", City: "Bangalore", Area: "Jayanagar", Lat: 12.9250, Lng: 77.5838, Open: true},
		{ID: 16, Name: "Apollo Pharmacy", City: "Hyderabad", Area: "Banjara Hills", Lat: 17.4239, Lng: 78.4738, Open: true},
		{ID: 17, Name: "MedPlus", City: "Hyderabad", Area: "HITEC City", Lat: 17.4435, Lng: 78.3772, Open: true},
		{ID: 18, Name: "Netmeds", City: "Hyderabad", Area: "Kukatpally", Lat: 17.4849, Lng: 78.3914, Open: false},
		{ID: 19, Name: "1mg Pharmacy", City: "Hyderabad", Area: "Secunderabad", Lat: 17.4399, Lng: 78.4983, Open: true},
		{ID: 20, Name: "Apollo Pharmacy", City: "Chennai", Area: "T Nagar", Lat: 13.0418, Lng: 80.2341, Open: true},
		{ID: 21, Name: "MedPlus", City: "Chennai", Area: "Anna Nagar", Lat: 13.0850, Lng: 80.2101, Open: true},
		{ID: 22, Name: "Netmeds", City: "Chennai", Area: "Velachery", Lat: 12.9750, Lng: 80.2210, Open: true},
		{ID: 23, Name: "1mg Pharmacy", City: "Chennai", Area: "OMR", Lat: 12.8996, Lng: 80.2209, Open: true},
		{ID: 24, Name: "Apollo Pharmacy", City: "Pune", Area: "Koregaon Park", Lat: 18.5362, Lng: 73.8958, Open: true},
		{ID: 25, Name: "MedPlus", City: "Pune", Area: "Hinjewadi", Lat: 18.5912, Lng: 73.7389, Open: true},
		{ID: 26, Name: "Netmeds", City: "Pune", Area: "Wakad", Lat: 18.5974, Lng: 73.7898, Open: true},
	}
}
