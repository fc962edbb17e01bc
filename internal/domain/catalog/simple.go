package catalog

var simpleQuestions = []Question{
	{ID: 1, Text: "I enjoy taking on challenging projects even when the outcome is uncertain."},
	{ID: 2, Text: "I often volunteer for leadership roles in group settings."},
	{ID: 3, Text: "I bounce back quickly from setbacks and failures."},
	{ID: 4, Text: "I prefer to work on multiple projects simultaneously rather than one at a time."},
	{ID: 5, Text: "I actively seek feedback to improve my performance."},
	{ID: 6, Text: "I feel energized by competitive environments."},
	{ID: 7, Text: "I am comfortable making decisions with incomplete information."},
	{ID: 8, Text: "I enjoy networking and meeting new people in professional settings."},
	{ID: 9, Text: "I often initiate new ideas and innovations in my work."},
	{ID: 10, Text: "I maintain high performance even under tight deadlines."},
}
