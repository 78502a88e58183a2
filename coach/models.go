package coach

// Activity is a single activity entry in the coach feed.
type Activity struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// Milestone is a reached development milestone in the coach feed.
type Milestone struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CoachData is the feed payload served for a resolved child.
type CoachData struct {
	ChildID               int         `json:"child_id"`
	Engagement            int         `json:"engagement"`
	NewSkills             int         `json:"new_skills"`
	CurrentActivity       Activity    `json:"current_activity"`
	Milestones            []Milestone `json:"milestones"`
	RecommendedActivities []Activity  `json:"recommended_activities"`
}
