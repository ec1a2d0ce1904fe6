package content

// SectionInfo is one entry in the unit's ordered section list.
type SectionInfo struct {
	SectionID     int    `json:"section_id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	EstimatedTime string `json:"estimated_time"`
	Difficulty    string `json:"difficulty"`
}

type Metadata struct {
	UnitNumber    int           `json:"unit_number"`
	UnitTitle     string        `json:"unit_title"`
	TotalSections int           `json:"total_sections"`
	Sections      []SectionInfo `json:"sections"`
}

// Question is a multiple-choice practice question. Options carry their
// letter prefix ("A) ..."), correct_answer is the bare letter.
type Question struct {
	ID            string   `json:"id"`
	Difficulty    string   `json:"difficulty"` // easy|medium|hard
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type PracticeSet struct {
	SectionID int        `json:"section_id"`
	Questions []Question `json:"questions"`
}

type Introduction struct {
	Hook     string `json:"hook"`
	Overview string `json:"overview"`
}

type Concept struct {
	Concept           string `json:"concept"`
	SimpleExplanation string `json:"simple_explanation"`
	RealWorldExample  string `json:"real_world_example"`
	VisualDescription string `json:"visual_description"`
}

type ExampleStep struct {
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
	Work        string `json:"work"`
}

type WorkedExample struct {
	Title   string        `json:"title"`
	Problem string        `json:"problem"`
	Steps   []ExampleStep `json:"steps"`
	Answer  string        `json:"answer"`
}

type CommonMistake struct {
	Mistake    string `json:"mistake"`
	WhyWrong   string `json:"why_wrong"`
	HowToAvoid string `json:"how_to_avoid"`
}

type Lesson struct {
	SectionID          int             `json:"section_id"`
	Title              string          `json:"title"`
	Introduction       Introduction    `json:"introduction"`
	KeyConcepts        []Concept       `json:"key_concepts"`
	StepByStepExamples []WorkedExample `json:"step_by_step_examples"`
	CommonMistakes     []CommonMistake `json:"common_mistakes"`
	Encouragement      string          `json:"encouragement"`
}

type TestInfo struct {
	TestNumber     int    `json:"test_number"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	TotalQuestions int    `json:"total_questions"`
	TimeSuggestion string `json:"time_suggestion"`
	Encouragement  string `json:"encouragement"`
}

type TestQuestion struct {
	QuestionNumber int      `json:"question_number"`
	Difficulty     string   `json:"difficulty"`
	SectionCovered string   `json:"section_covered"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"`
	Explanation    string   `json:"explanation"`
}

// AnswerKeySummary mirrors the printable answer key: the ordered letter
// list plus score messages keyed by contiguous bands ("0-8", "9-11", ...).
type AnswerKeySummary struct {
	Answers    []string          `json:"answers"`
	ScoreGuide map[string]string `json:"score_guide"`
}

type Test struct {
	TestInfo         TestInfo         `json:"test_info"`
	Questions        []TestQuestion   `json:"questions"`
	AnswerKeySummary AnswerKeySummary `json:"answer_key_summary"`
}
