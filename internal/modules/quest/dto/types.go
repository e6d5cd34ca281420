package dto

type QuestOutput struct {
	Date      string
	Subject   string
	Phase     string
	XP        int
	Completed bool
}
