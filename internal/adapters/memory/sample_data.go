package memory

import "github.com/Dearie-de-cybek/PropTech/internal/core/domain"

// SampleProperties returns the built-in listing records. Record 1 also
// carries the detail page data.
func SampleProperties() []domain.PropertyRecord {
	return []domain.PropertyRecord{
		{
			ID:      1,
			Name:    "La Rouge Maisonnette",
			Address: "123 Main St, Springfield",
			Price:   480000, Bedrooms: 3, Bathrooms: 3, Toilets: 4,
			Images: []string{
				"/public/images/room1.jpg",
				"/public/images/room2.jpg",
				"/public/images/room3.jpg",
				"/public/images/room4.jpg",
			},
			ImageCount:  5,
			Description: "A beautiful property with modern amenities...",
			Features:    []string{"Air Conditioning", "Pool", "Garden", "Garage"},
		},
		{
			ID: 2, Address: "456 Oak Ave, Riverside",
			Price: 550000, Bedrooms: 4, Bathrooms: 2, Toilets: 3,
			Images: []string{"/public/images/room2.jpg"}, ImageCount: 8,
		},
		{
			ID: 3, Address: "789 Pine Rd, Lakeside",
			Price: 395000, Bedrooms: 2, Bathrooms: 2, Toilets: 2,
			Images: []string{"/public/images/room3.jpg"}, ImageCount: 6,
		},
		{
			ID: 4, Address: "101 Cedar Ln, Mountainview",
			Price: 620000, Bedrooms: 5, Bathrooms: 3, Toilets: 4,
			Images: []string{"/public/images/room4.jpg"}, ImageCount: 12,
		},
		{
			ID: 5, Address: "202 Elm St, Brookside",
			Price: 450000, Bedrooms: 3, Bathrooms: 2, Toilets: 3,
			Images: []string{"/public/images/room5.jpg"}, ImageCount: 7,
		},
		{
			ID: 6, Address: "303 Maple Dr, Westfield",
			Price: 510000, Bedrooms: 4, Bathrooms: 3, Toilets: 3,
			Images: []string{"/public/images/room6.jpg"}, ImageCount: 9,
		},
	}
}

// SampleSponsoredAds returns the built-in ads.
func SampleSponsoredAds() []domain.SponsoredAd {
	return []domain.SponsoredAd{
		{
			ID:             1,
			Image:          "/public/images/sponspored1.jpg",
			Title:          "Premium Oceanview Property",
			Description:    "Exclusive beachfront living with panoramic views",
			AdvertiserName: "Luxury Realty",
			AdvertiserLogo: "/public/images/adlogo.png",
		},
		{
			ID:             2,
			Image:          "/public/images/sponspored2.jpg",
			Title:          "Modern Downtown Apartments",
			Description:    "Urban living redefined in the heart of the city",
			AdvertiserName: "Metro Properties",
			AdvertiserLogo: "/public/images/adlogo.png",
		},
		{
			ID:             3,
			Image:          "/public/images/sponspored3.jpg",
			Title:          "Modern Downtown Apartments",
			Description:    "Urban living redefined in the heart of the city",
			AdvertiserName: "Metro Properties",
			AdvertiserLogo: "/public/images/adlogo.png",
		},
	}
}
