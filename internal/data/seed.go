package data

// SeedBooks returns the catalog the server starts with.
func SeedBooks() []Book {
	return []Book{
		{
			ID:            "1",
			Title:         "The Pragmatic Programmer",
			Author:        "Andy Hunt and Dave Thomas",
			ISBN:          "978-0135957059",
			PublishedYear: 1999,
			Available:     true,
		},
		{
			ID:            "2",
			Title:         "Clean Code",
			Author:        "Robert C. Martin",
			ISBN:          "978-0132350884",
			PublishedYear: 2008,
			Available:     true,
		},
		{
			ID:            "3",
			Title:         "Design Patterns",
			Author:        "Erich Gamma, Richard Helm, Ralph Johnson, John Vlissides",
			ISBN:          "978-0201633610",
			PublishedYear: 1994,
			Available:     false,
		},
		{
			ID:            "4",
			Title:         "Refactoring",
			Author:        "Martin Fowler",
			ISBN:          "978-0134757599",
			PublishedYear: 2018,
			Available:     true,
		},
		{
			ID:            "5",
			Title:         "Test Driven Development",
			Author:        "Kent Beck",
			ISBN:          "978-0321146530",
			PublishedYear: 2002,
			Available:     true,
		},
		{
			ID:            "6",
			Title:         "The Art of Software Testing",
			Author:        "Glenford J. Myers",
			ISBN:          "978-1118031964",
			PublishedYear: 2011,
			Available:     true,
		},
		{
			ID:            "7",
			Title:         "Continuous Delivery",
			Author:        "Jez Humble and David Farley",
			ISBN:          "978-0321601919",
			PublishedYear: 2010,
			Available:     false,
		},
	}
}
