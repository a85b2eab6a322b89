package ledger

// Categories is the fixed closed set of part categories presented to
// users. It is UI-facing configuration, the store accepts any text value.
var Categories = []string{
	"Frame",
	"Fork",
	"Wheels",
	"Tires",
	"Brakes",
	"Drivetrain",
	"Handlebars",
	"Saddle",
	"Pedals",
	"Suspension",
	"Electronics",
	"Accessories",
	"Other",
}
