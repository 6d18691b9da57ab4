package catalog

// Seed returns a fresh copy of the featured-activity catalog. Callers get
// their own slices, so appending merged suggestions never mutates the seed.
func Seed() []Group {
	groups := make([]Group, len(seed))
	for i, g := range seed {
		activities := make([]Activity, len(g.Activities))
		copy(activities, g.Activities)
		groups[i] = Group{Category: g.Category, Icon: g.Icon, Activities: activities}
	}
	return groups
}

var seed = []Group{
	{
		Category: "Outdoors & Nature",
		Icon:     "🌊",
		Activities: []Activity{
			{
				Name:        "Fort Phoenix State Reservation",
				Description: "Historic Revolutionary War fort with beautiful harbor views, beach access, and walking trails. Perfect for sunset watching and learning about local history.",
				Location:    "Fairhaven, MA",
				Website:     "https://www.mass.gov/locations/fort-phoenix-state-reservation",
				Image:       "https://www.mass.gov/files/styles/embedded_full_width/public/images/2017-05/fort%20phoenix%20beach.jpg",
				Highlights:  []string{"Historic fort", "Beach access", "Sunset views", "Free parking"},
			},
			{
				Name:        "Mattapoisett Rail Trail & Ned's Point Lighthouse",
				Description: "Scenic paved trail perfect for walking, biking, or jogging. Leads to stunning views of Ned's Point Lighthouse and Buzzards Bay. Connects to Phoenix Bike Trail for longer adventures.",
				Location:    "Mattapoisett, MA",
				Website:     "https://mattapoisettrailtrail.com/",
				Image:       "https://www.savebuzzardsbay.org/wp-content/uploads/2016/05/places-to-go_mattapoisett-rail-trail-1-800x580.jpg",
				Highlights:  []string{"Paved trail", "Lighthouse views", "Family-friendly", "Connects to other trails"},
			},
			{
				Name:        "West Island Town Beach",
				Description: "Beautiful sandy beach with lifeguards during summer months. Great for swimming, sunbathing, and beach walks. Parking passes required in season.",
				Location:    "Fairhaven, MA",
				Website:     "https://fairhaventours.com/west-island-town-beach-fairhaven-ma/",
				Image:       "https://www.savebuzzardsbay.org/wp-content/uploads/2016/02/in-your-community_fairhaven-2-800x580.jpg",
				Highlights:  []string{"Lifeguarded beach", "Sandy shoreline", "Swimming", "Summer season"},
			},
			{
				Name:        "Nasketucket Bay State Reservation",
				Description: "Wooded trails leading to rocky shoreline with excellent bird watching opportunities. Multiple trail options for different skill levels.",
				Location:    "Fairhaven, MA",
				Website:     "https://www.mass.gov/locations/nasketucket-bay-state-reservation",
				Image:       "https://www.mass.gov/files/styles/embedded_full_width/public/images/2017-05/nasketucket%20bay%20trail.jpg",
				Highlights:  []string{"Wooded trails", "Rocky shoreline", "Bird watching", "Multiple difficulty levels"},
			},
		},
	},
	{
		Category: "Museums & History",
		Icon:     "🏛️",
		Activities: []Activity{
			{
				Name:        "New Bedford Whaling Museum",
				Description: "World's largest museum devoted to whaling history. Features the largest ship model in the world, scrimshaw collection, and interactive exhibits. Don't miss the 3D theater experience!",
				Location:    "New Bedford, MA",
				Website:     "https://www.whalingmuseum.org/visit/",
				Image:       "https://www.whalingmuseum.org/wp-content/uploads/2019/03/exterior-shot-1024x683.jpg",
				Highlights:  []string{"World's largest whaling museum", "3D theater", "Ship models", "Interactive exhibits"},
			},
			{
				Name:        "New Bedford Whaling National Historical Park",
				Description: "Downtown walking tours through America's whaling capital. Explore cobblestone streets, historic buildings, and learn about the city's maritime heritage.",
				Location:    "New Bedford, MA",
				Website:     "https://www.nps.gov/nebe/index.htm",
				Image:       "https://www.nps.gov/common/uploads/structured_data/3C7B8B8B-1DD8-B71B-0B3C2B5B8B8B8B8B.jpg",
				Highlights:  []string{"Walking tours", "Historic downtown", "Maritime heritage", "Cobblestone streets"},
			},
		},
	},
	{
		Category: "Day Trips & Ferries",
		Icon:     "⛵",
		Activities: []Activity{
			{
				Name:        "Martha's Vineyard Ferry",
				Description: "Take the Seastreak ferry from New Bedford to Martha's Vineyard. Skip Cape traffic and enjoy a scenic 1-hour cruise to this famous island destination.",
				Location:    "Departs from New Bedford State Pier",
				Website:     "https://seastreak.com/ferry-routes-and-schedules/between-new-bedford-marthas-vineyard-ma/",
				Image:       "https://explorenewbedford.org/wp-content/uploads/seastreak-1.jpg",
				Highlights:  []string{"1-hour cruise", "Skip Cape traffic", "Seasonal service", "Luxury catamaran"},
			},
			{
				Name:        "Cuttyhunk Island Ferry",
				Description: "Adventure to this remote island with pristine beaches and hiking trails. Perfect for a peaceful day trip away from the crowds.",
				Location:    "Departs from New Bedford",
				Website:     "https://cuttyhunkferry.com/",
				Image:       "https://cuttyhunkferry.com/wp-content/uploads/2019/05/cuttyhunk-island-aerial.jpg",
				Highlights:  []string{"Remote island", "Pristine beaches", "Hiking trails", "Peaceful escape"},
			},
		},
	},
	{
		Category: "Food & Drink",
		Icon:     "🍽️",
		Activities: []Activity{
			{
				Name:        "Nasketucket Bay Vineyard",
				Description: "Fairhaven's first vineyard and winery in a charming converted 1920's dairy barn. Enjoy wine tastings, live music, and local food in a rustic setting.",
				Location:    "237 Nasketucket Road, Fairhaven, MA",
				Website:     "https://www.peacelovevino.net/",
				Image:       "https://static.wixstatic.com/media/11062b_8b8b8b8b8b8b8b8b8b8b8b8b8b8b8b8b~mv2.jpg",
				Highlights:  []string{"Local wines", "Live music", "Historic barn", "Outdoor patio"},
			},
			{
				Name:        "Oxford Creamery",
				Description: "Classic Mattapoisett seafood restaurant and ice cream shop. Famous for their fresh seafood and homemade ice cream with harbor views.",
				Location:    "Mattapoisett, MA",
				Website:     "https://www.oxfordcreamery.com/",
				Image:       "https://www.oxfordcreamery.com/images/exterior.jpg",
				Highlights:  []string{"Fresh seafood", "Homemade ice cream", "Harbor views", "Local favorite"},
			},
			{
				Name:        "The Black Whale",
				Description: "Waterfront dining in New Bedford with fresh seafood and craft cocktails. Great views of the harbor and excellent for special dinners.",
				Location:    "New Bedford Waterfront",
				Website:     "https://www.theblackwhale.com/",
				Image:       "https://www.theblackwhale.com/images/restaurant-exterior.jpg",
				Highlights:  []string{"Waterfront dining", "Fresh seafood", "Craft cocktails", "Harbor views"},
			},
		},
	},
	{
		Category: "Family-Friendly",
		Icon:     "👨‍👩‍👧‍👦",
		Activities: []Activity{
			{
				Name:        "Buttonwood Park Zoo",
				Description: "AZA-accredited zoo with over 200 animals from around the world. Features a children's zoo, train rides, and educational programs. Open 9am-4pm daily.",
				Location:    "New Bedford, MA",
				Website:     "https://www.bpzoo.org/visit-overview/",
				Image:       "https://www.bpzoo.org/wp-content/uploads/2019/03/zoo-entrance.jpg",
				Highlights:  []string{"200+ animals", "Children's zoo", "Train rides", "Educational programs"},
			},
		},
	},
}
