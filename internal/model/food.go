package model

// Food categories used for exact-match filtering. "All" at the API level
// means no category filter.
const (
    FoodCategoryMeal     = "Meal"
    FoodCategorySnack    = "Snack"
    FoodCategoryBeverage = "Beverage"
)

// FoodItem is a static catalog entry for onboard food ordering.
type FoodItem struct {
    ID          string `json:"id"`
    Name        string `json:"name"`
    Price       int    `json:"price"`
    Category    string `json:"category"`
    Image       string `json:"image"`
    Description string `json:"description"`
}

// Offer is a promotional banner shown on the home and offers screens. The
// code is display-only; nothing in the system redeems it.
type Offer struct {
    ID       int    `json:"id"`
    Title    string `json:"title"`
    Discount string `json:"discount"`
    Code     string `json:"code"`
    Image    string `json:"image"`
}
