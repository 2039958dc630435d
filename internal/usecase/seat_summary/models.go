package seat_summary

// Request модель запроса сводки по местам
type Request struct {
	CourseID  int64
	DateLabel *string // nil = сводка по всем датам
}

// DateSeats места на одну дату
// Для повторяющихся меток значения общие
type DateSeats struct {
	Label     string
	Capacity  int
	Sold      int
	Available int
	FewLeft   bool
}

// Response сводка по местам курса
type Response struct {
	CourseID       int64
	TotalCapacity  int
	TotalSold      int
	TotalAvailable int
	SeatsPending   bool        // журнал продаж был недоступен
	Dates          []DateSeats // по одной записи на уникальную метку, в порядке расписания
	Date           *DateSeats  // заполняется, если запрошена конкретная дата
}
