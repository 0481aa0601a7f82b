package entities

// Major is a university major with related careers.
type Major struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Careers      []string `json:"careers" yaml:"careers"`
	Requirements string   `json:"requirements" yaml:"requirements"` // entrance exam subject group
	Duration     string   `json:"duration" yaml:"duration"`
	Category     string   `json:"category" yaml:"category"`
}

// StudyAbroadProgram describes study abroad options in a country.
type StudyAbroadProgram struct {
	Country      string   `json:"country" yaml:"country"`
	Programs     []string `json:"programs" yaml:"programs"`
	Duration     string   `json:"duration" yaml:"duration"`
	Cost         string   `json:"cost" yaml:"cost"`
	Requirements string   `json:"requirements" yaml:"requirements"`
}

// TipSection groups interview or CV tips under a heading.
type TipSection struct {
	Kind  string   `json:"kind" yaml:"kind"` // "interview" or "cv"
	Title string   `json:"title" yaml:"title"`
	Tips  []string `json:"tips" yaml:"tips"`
}
