package entity

// KenyanCities is the location list offered by the sign-up and filter pickers.
var KenyanCities = []string{
	"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret", "Thika", "Kiambu", "Malindi", "Machakos",
}
