package models

// Course is one entry of the fixed course catalog.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// catalog is the static course table. The topic-diversity metric divides by
// len(catalog), so adding or removing a course changes that metric too.
var catalog = []Course{
	{
		ID:          "1",
		Title:       "Python Programming",
		Topic:       "python",
		Description: "Master Python programming from basics to advanced concepts",
		Difficulty:  DifficultyMedium,
		Icon:        "🐍",
		Color:       "bg-blue-500",
	},
	{
		ID:          "2",
		Title:       "JavaScript Fundamentals",
		Topic:       "javascript",
		Description: "Learn modern JavaScript and ES6+ features",
		Difficulty:  DifficultyMedium,
		Icon:        "📜",
		Color:       "bg-yellow-500",
	},
	{
		ID:          "3",
		Title:       "Data Structures",
		Topic:       "data-structures",
		Description: "Essential data structures and algorithms",
		Difficulty:  DifficultyHard,
		Icon:        "🌳",
		Color:       "bg-green-500",
	},
	{
		ID:          "4",
		Title:       "React.js",
		Topic:       "react",
		Description: "Build modern web applications with React",
		Difficulty:  DifficultyMedium,
		Icon:        "⚛️",
		Color:       "bg-cyan-500",
	},
	{
		ID:          "5",
		Title:       "Node.js & Express",
		Topic:       "nodejs",
		Description: "Backend development with Node.js",
		Difficulty:  DifficultyMedium,
		Icon:        "🟢",
		Color:       "bg-emerald-500",
	},
	{
		ID:          "6",
		Title:       "Machine Learning Basics",
		Topic:       "machine-learning",
		Description: "Introduction to ML concepts and algorithms",
		Difficulty:  DifficultyHard,
		Icon:        "🤖",
		Color:       "bg-purple-500",
	},
	{
		ID:          "7",
		Title:       "SQL & Databases",
		Topic:       "sql",
		Description: "Database design and SQL queries",
		Difficulty:  DifficultyEasy,
		Icon:        "🗄️",
		Color:       "bg-indigo-500",
	},
	{
		ID:          "8",
		Title:       "Web Development",
		Topic:       "web-development",
		Description: "HTML, CSS, and responsive design",
		Difficulty:  DifficultyEasy,
		Icon:        "🌐",
		Color:       "bg-pink-500",
	},
}

// Courses returns the full course catalog.
func Courses() []Course {
	return catalog
}

// CourseByTopic looks up a catalog entry by its topic slug.
func CourseByTopic(topic string) (Course, bool) {
	for _, c := range catalog {
		if c.Topic == topic {
			return c, true
		}
	}
	return Course{}, false
}

// TopicCount is the catalog size, used as the topic-diversity divisor.
func TopicCount() int {
	return len(catalog)
}
