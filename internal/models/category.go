package models

// SettleCategory tags synthetic settlement transactions.
const SettleCategory = "Settle"

// DefaultCategories is the stock suggestion set seeded into a new user's
// category collection. Users can add and remove entries freely; categories
// on transactions are free text either way.
var DefaultCategories = []string{
	"Rent", "EMI", "Wifi", "Recharge", "Groceries", "Snacks", "Gym", "Help",
	"Public Transport", "Fuel", "Vehicle Maintenance", "Tea/Coffee", "Dinner",
	"Lunch", "Breakfast", "Clothing", "Movies", "Sports", "Medicine", "Eggs",
	"HouseHold Things", "Split", "Cash ATM", "Invest", SettleCategory,
}
