package web

type CreateReq struct {
	Name string `json:"name"`
}

type TeamID struct {
	TeamId int64 `json:"teamId"`
}

type JoinReq struct {
	Code string `json:"code"`
}

type Team struct {
	Id       int64  `json:"id"`
	Name     string `json:"name"`
	JoinCode string `json:"joinCode"`
	Ctime    int64  `json:"ctime"`
}

type Student struct {
	Uid      int64  `json:"uid"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	JoinedAt int64  `json:"joinedAt"`
}

type TeamList struct {
	Teams []Team `json:"teams"`
}

type StudentList struct {
	Students []Student `json:"students"`
}
