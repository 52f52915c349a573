package holiday

type CreateHolidayRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
}

type UpdateHolidayRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

type HolidayResponse struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Year        int    `json:"year"`
	IsActive    bool   `json:"is_active"`
}

type IsHolidayResponse struct {
	Date      string `json:"date"`
	IsHoliday bool   `json:"is_holiday"`
}

type GenerateHolidaysResponse struct {
	Year     int               `json:"year"`
	Created  bool              `json:"created"`
	Holidays []HolidayResponse `json:"holidays"`
}
