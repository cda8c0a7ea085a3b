package catalog

import "github.com/railswift/railswift/internal/model"

// Static tables backing the catalog. Prices are per passenger in rupees.

var cityList = []string{
	"Mumbai", "Delhi", "Surat", "Ahmedabad", "Bengaluru", "Chennai", "Hyderabad",
	"Kolkata", "Jaipur", "Vadodara", "Pune", "Nagpur", "Lucknow", "Patna",
	"Indore", "Bhopal", "Varanasi", "Gorakhpur", "Rajkot", "Kanpur",
	"Nashik", "Ranchi", "Amritsar", "Agra", "Goa", "Jodhpur",
	"Udaipur", "Madgaon", "Hapa", "Surendranagar", "Anand", "Bharuch",
}

var classPrices = map[string]int{
	"1A": 3200,
	"2A": 2100,
	"3A": 1450,
	"SL": 550,
	"CC": 850,
	"EC": 1800,
	"2S": 180,
}

var classNames = map[string]string{
	"1A": "First AC",
	"2A": "Second AC",
	"3A": "Third AC",
	"SL": "Sleeper",
	"CC": "AC Chair Car",
	"EC": "Exec. Chair Car",
	"2S": "Second Sitting",
}

// trainTable pairs each route with the class codes it offers; New()
// expands the codes into full TrainClass values.
type trainEntry struct {
	train      model.Train
	classTypes []string
}

var trainTable = []trainEntry{
	{
		train: model.Train{
			ID:        "12951",
			Number:    "12951",
			Name:      "Mumbai Rajdhani Express",
			From:      "Mumbai Central",
			To:        "New Delhi",
			Departure: "16:35",
			Arrival:   "08:35",
			Duration:  "16h 00m",
		},
		classTypes: []string{"SL", "3A", "2A", "1A"},
	},
	{
		train: model.Train{
			ID:        "12009",
			Number:    "12009",
			Name:      "Shatabdi Express",
			From:      "Mumbai Central",
			To:        "Ahmedabad",
			Departure: "06:00",
			Arrival:   "12:45",
			Duration:  "06h 45m",
		},
		classTypes: []string{"CC", "EC"},
	},
	{
		train: model.Train{
			ID:        "12627",
			Number:    "12627",
			Name:      "Karnataka Express",
			From:      "New Delhi",
			To:        "Bengaluru",
			Departure: "21:15",
			Arrival:   "06:40",
			Duration:  "33h 25m",
		},
		classTypes: []string{"SL", "3A", "2A"},
	},
}

var offers = []model.Offer{
	{ID: 1, Title: "Summer Special", Discount: "20% OFF", Code: "SUMMER20", Image: "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?auto=format&fit=crop&w=400&q=80"},
	{ID: 2, Title: "First Booking", Discount: "₹200 OFF", Code: "RAILNEW", Image: "https://images.unsplash.com/photo-1506744038136-46273834b3fb?auto=format&fit=crop&w=400&q=80"},
	{ID: 3, Title: "Bank Offer", Discount: "10% Cashback", Code: "HDFC10", Image: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=400&q=80"},
}

var foodItems = []model.FoodItem{
	{ID: "f1", Name: "Veg Maharaja Thali", Price: 250, Category: model.FoodCategoryMeal, Description: "Complete meal with Paneer, Dal, Rice, and Roti.", Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f2", Name: "Chicken Biryani", Price: 320, Category: model.FoodCategoryMeal, Description: "Spicy Hyderabadi style Dum Biryani.", Image: "https://images.unsplash.com/photo-1563379091339-03b21bc4a4f8?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f3", Name: "Masala Dosa", Price: 120, Category: model.FoodCategorySnack, Description: "Crispy dosa with potato filling and chutney.", Image: "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f4", Name: "Club Sandwich", Price: 150, Category: model.FoodCategorySnack, Description: "Fresh veggies and cheese on toasted bread.", Image: "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f5", Name: "Cold Coffee", Price: 80, Category: model.FoodCategoryBeverage, Description: "Refreshing iced coffee with cream.", Image: "https://images.unsplash.com/photo-1559496417-e7f25cb247f3?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f6", Name: "Mango Lassi", Price: 60, Category: model.FoodCategoryBeverage, Description: "Traditional yogurt drink with mango pulp.", Image: "https://images.unsplash.com/photo-1571006682868-04d4db47ad7c?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f7", Name: "Paneer Tikka Meal", Price: 280, Category: model.FoodCategoryMeal, Description: "Grilled paneer served with butter naan and salad.", Image: "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f8", Name: "Dal Makhani Rice", Price: 190, Category: model.FoodCategoryMeal, Description: "Slow cooked black lentils with steamed basmati rice.", Image: "https://images.unsplash.com/photo-1546833998-877b37c2e5c6?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f9", Name: "Butter Chicken", Price: 350, Category: model.FoodCategoryMeal, Description: "Creamy tomato gravy with tender chicken chunks.", Image: "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f10", Name: "Egg Curry Meal", Price: 210, Category: model.FoodCategoryMeal, Description: "Two boiled eggs in spicy gravy with tandoori roti.", Image: "https://images.unsplash.com/photo-1548940740-204726a19db3?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f11", Name: "Vada Pav (2 pcs)", Price: 70, Category: model.FoodCategorySnack, Description: "Mumbai style potato fritter in bun with spicy chutney.", Image: "https://images.unsplash.com/photo-1606491956689-2ea8c5119c85?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f12", Name: "Samosa Chat", Price: 90, Category: model.FoodCategorySnack, Description: "Crushed samosas topped with curd and tamarind sauce.", Image: "https://images.unsplash.com/photo-1601050690597-df056fb4709a?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f13", Name: "Cheese Pizza Slice", Price: 110, Category: model.FoodCategorySnack, Description: "Large slice of extra cheesy margherita pizza.", Image: "https://images.unsplash.com/photo-1513104890138-7c749659a591?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f14", Name: "Pav Bhaji", Price: 160, Category: model.FoodCategoryMeal, Description: "Spiced vegetable mash served with buttered buns.", Image: "https://images.unsplash.com/photo-1626132646529-500637532738?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f15", Name: "Masala Chai", Price: 30, Category: model.FoodCategoryBeverage, Description: "Strong tea brewed with ginger and cardamom.", Image: "https://images.unsplash.com/photo-1561336313-0bd5e0b27ec8?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f16", Name: "Orange Juice", Price: 90, Category: model.FoodCategoryBeverage, Description: "Freshly squeezed oranges with a dash of mint.", Image: "https://images.unsplash.com/photo-1613478223719-2ab80260f423?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f17", Name: "Gulab Jamun (2 pcs)", Price: 60, Category: model.FoodCategorySnack, Description: "Soft milk solids dumplings in sugar syrup.", Image: "https://images.unsplash.com/photo-1589119908995-c6837fa14848?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f18", Name: "Veg Hakka Noodles", Price: 180, Category: model.FoodCategoryMeal, Description: "Stir-fried noodles with crunchy vegetables.", Image: "https://images.unsplash.com/photo-1585032226651-759b368d7246?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f19", Name: "Chicken 65", Price: 240, Category: model.FoodCategorySnack, Description: "Deep fried spicy chicken chunks with curry leaves.", Image: "https://images.unsplash.com/photo-1610057099431-d73a1c9d2f2f?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f20", Name: "Ice Tea", Price: 70, Category: model.FoodCategoryBeverage, Description: "Chilled tea with lemon and honey flavor.", Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f21", Name: "Fish Curry Rice", Price: 380, Category: model.FoodCategoryMeal, Description: "Goan style fish curry served with white rice.", Image: "https://images.unsplash.com/photo-1626508035297-0ae27442d543?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f22", Name: "Mutton Korma", Price: 420, Category: model.FoodCategoryMeal, Description: "Slow cooked mutton in a rich yogurt based gravy.", Image: "https://images.unsplash.com/photo-1545241047-6083a3684587?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f23", Name: "French Fries", Price: 100, Category: model.FoodCategorySnack, Description: "Crispy golden fries with peri-peri seasoning.", Image: "https://images.unsplash.com/photo-1573080496219-bb080dd4f877?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f24", Name: "Chole Bhature", Price: 170, Category: model.FoodCategoryMeal, Description: "Spicy chickpeas with fluffy deep-fried bread.", Image: "https://images.unsplash.com/photo-1626132646529-500637532738?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f25", Name: "Hot Chocolate", Price: 120, Category: model.FoodCategoryBeverage, Description: "Rich creamy cocoa with melted marshmallows.", Image: "https://images.unsplash.com/photo-1544787210-2213d84ad96b?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f26", Name: "Spring Rolls", Price: 130, Category: model.FoodCategorySnack, Description: "Crispy rolls stuffed with seasoned vegetables.", Image: "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f27", Name: "Veg Pulao", Price: 160, Category: model.FoodCategoryMeal, Description: "Fragrant rice cooked with garden fresh vegetables.", Image: "https://images.unsplash.com/photo-1633945274405-b6c8069047b0?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f28", Name: "Chicken Burger", Price: 180, Category: model.FoodCategorySnack, Description: "Juicy chicken patty with lettuce and mayo.", Image: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f29", Name: "Mineral Water", Price: 20, Category: model.FoodCategoryBeverage, Description: "1 Liter chilled purified mineral water.", Image: "https://images.unsplash.com/photo-1560023907-5f339617ea30?auto=format&fit=crop&w=200&h=200&q=80"},
	{ID: "f30", Name: "Sweet Corn Soup", Price: 90, Category: model.FoodCategoryBeverage, Description: "Warm comforting soup with golden corn kernels.", Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&w=200&h=200&q=80"},
}
