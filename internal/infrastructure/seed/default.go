package seed

import "github.com/mikiasgoitom/SuppliersEgypt/internal/domain/entity"

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// Default is the built-in demo dataset.
func Default() *Dataset {
	settings := entity.DefaultSettings()
	return &Dataset{
		Suppliers:  defaultSuppliers(),
		Users:      defaultUsers(),
		Categories: defaultCategories(),
		Cities:     defaultCities(),
		Settings:   &settings,
	}
}

func defaultCategories() []string {
	return []string{
		"ملابس ومنسوجات",
		"إلكترونيات",
		"مواد بناء",
		"أغذية ومشروبات",
		"أثاث وديكور",
		"بلاستيك وتغليف",
		"كيماويات",
	}
}

func defaultCities() entity.CityData {
	return entity.CityData{
		{City: "القاهرة", Regions: []string{"مدينة نصر", "مصر الجديدة", "المعادي", "وسط البلد", "شبرا"}},
		{City: "الجيزة", Regions: []string{"الدقي", "المهندسين", "الهرم", "فيصل"}},
		{City: "الإسكندرية", Regions: []string{"سموحة", "المنشية", "العجمي", "برج العرب"}},
		{City: "المنصورة", Regions: []string{}},
		{City: "المحلة الكبرى", Regions: []string{}},
		{City: "العاشر من رمضان", Regions: []string{"المنطقة الصناعية الأولى", "المنطقة الصناعية الثانية"}},
		{City: "6 أكتوبر", Regions: []string{"المنطقة الصناعية", "الحي المتميز"}},
		{City: "بورسعيد", Regions: []string{}},
		{City: "دمياط", Regions: []string{"دمياط الجديدة", "رأس البر"}},
	}
}

func defaultUsers() []entity.User {
	return []entity.User{
		{ID: "u1", Email: "admin@suppliers.eg", Name: "مدير النظام", Role: entity.UserRoleAdmin, IsActive: true, JoinedDate: "2023-01-01"},
		{ID: "u2", Email: "user@test.com", Name: "أحمد محمد", Role: entity.UserRoleUser, IsActive: true, JoinedDate: "2023-05-15", Phone: strPtr("01012345678")},
		{ID: "u3", Email: "info@elnoor-tex.com", Name: "مصنع النور", Role: entity.UserRoleSupplier, IsActive: true, JoinedDate: "2023-06-20", CompanyName: strPtr("مصنع النور للمنسوجات")},
		{ID: "u4", Email: "banned@test.com", Name: "مستخدم محظور", Role: entity.UserRoleUser, IsActive: false, JoinedDate: "2023-08-10"},
	}
}

func defaultSuppliers() []entity.Supplier {
	return []entity.Supplier{
		{
			ID:           "1",
			Name:         "مصنع النور للمنسوجات",
			Description:  "رائد في صناعة الملابس القطنية واليونيفورم بجودة تصدير عالية. نوفر خدمات التصنيع للغير.",
			Category:     "ملابس ومنسوجات",
			City:         "المحلة الكبرى",
			Rating:       4.8,
			ReviewCount:  120,
			IsVerified:   true,
			LogoURL:      "https://picsum.photos/100/100?random=1",
			CoverURL:     "https://picsum.photos/800/400?random=1",
			ContactPhone: "+201000000001",
			SocialStats: []entity.SocialStat{
				{Platform: entity.PlatformFacebook, Followers: 150000, URL: "#"},
				{Platform: entity.PlatformTelegram, Followers: 5000, URL: "#"},
			},
			MinOrderValue: floatPtr(5000),
			FoundedYear:   1995,
			Tags:          []string{"قطن 100%", "تصدير", "يونيفورم"},
		},
		{
			ID:           "2",
			Name:         "تكنو إيجيبت للإلكترونيات",
			Description:  "مستورد وموزع معتمد لإكسسوارات المحمول وقطع الغيار الأصلية. أسعار خاصة للجملة.",
			Category:     "إلكترونيات",
			City:         "القاهرة",
			Rating:       4.5,
			ReviewCount:  85,
			IsVerified:   true,
			LogoURL:      "https://picsum.photos/100/100?random=2",
			CoverURL:     "https://picsum.photos/800/400?random=2",
			ContactPhone: "+201200000002",
			SocialStats: []entity.SocialStat{
				{Platform: entity.PlatformFacebook, Followers: 25000, URL: "#"},
				{Platform: entity.PlatformTikTok, Followers: 80000, URL: "#"},
			},
			MinOrderValue: floatPtr(2000),
			FoundedYear:   2010,
			Tags:          []string{"جملة", "شحن محافظات", "ضمان"},
		},
		{
			ID:           "3",
			Name:         "البركة للأثاث الدمياطي",
			Description:  "تشكيلة واسعة من الأثاث المودرن والكلاسيك. خشب زان أحمر روماني.",
			Category:     "أثاث وديكور",
			City:         "دمياط",
			Rating:       4.9,
			ReviewCount:  200,
			IsVerified:   false,
			LogoURL:      "https://picsum.photos/100/100?random=3",
			CoverURL:     "https://picsum.photos/800/400?random=3",
			ContactPhone: "+201100000003",
			SocialStats: []entity.SocialStat{
				{Platform: entity.PlatformFacebook, Followers: 300000, URL: "#"},
			},
			MinOrderValue: floatPtr(15000),
			FoundedYear:   1980,
			Tags:          []string{"أثاث", "غرف نوم", "شحن دولي"},
		},
		{
			ID:           "4",
			Name:         "بلاستيك سيتي",
			Description:  "حلول تغليف متكاملة للمصانع والمطاعم. أكياس، علب، ومطبوعات.",
			Category:     "بلاستيك وتغليف",
			City:         "العاشر من رمضان",
			Rating:       4.2,
			ReviewCount:  45,
			IsVerified:   true,
			LogoURL:      "https://picsum.photos/100/100?random=4",
			CoverURL:     "https://picsum.photos/800/400?random=4",
			ContactPhone: "+201500000004",
			SocialStats: []entity.SocialStat{
				{Platform: entity.PlatformFacebook, Followers: 12000, URL: "#"},
				{Platform: entity.PlatformTelegram, Followers: 2000, URL: "#"},
			},
			FoundedYear: 2018,
			Tags:        []string{"طباعة", "تغليف", "صديق للبيئة"},
		},
	}
}
