package domain

// Summary 教师看板的汇总数字
type Summary struct {
	TotalStudents int64
	TotalAnswers  int64
	// Accuracy 正确率百分比，保留两位小数，没有答题时是 0
	Accuracy       float64
	PostsCreated   int64
	PendingReports int64
}
