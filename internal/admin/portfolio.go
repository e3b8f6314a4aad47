package admin

import "github.com/Renal37/valerius-unlock/internal/models"

const portfolioVideoURL = "https://www.youtube.com/embed/dQw4w9WgXcQ"

// Portfolio примеры выполненных работ. Видео не хранятся на сервере и в сессию
// попадают только отсюда.
func Portfolio() []models.Video {
	return []models.Video{
		{ID: 1, Title: "Разблокировка TECNO SPARK GO 2 Android 15", PhoneModel: "TECNO SPARK GO 2",
			ThumbnailURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400", VideoURL: portfolioVideoURL, Views: 1240},
		{ID: 2, Title: "FRP Bypass INFINIX NOTE 40", PhoneModel: "INFINIX NOTE 40",
			ThumbnailURL: "https://images.unsplash.com/photo-1598327105666-5b89351aff97?w=400", VideoURL: portfolioVideoURL, Views: 860},
		{ID: 3, Title: "Honor Magic V2 Mi Account Unlock", PhoneModel: "Honor Magic V2",
			ThumbnailURL: "https://images.unsplash.com/photo-1574944985070-8f3ebc6b79d2?w=400", VideoURL: portfolioVideoURL, Views: 2310},
		{ID: 4, Title: "Realme 9 Pro Google Account", PhoneModel: "Realme 9 Pro",
			ThumbnailURL: "https://images.unsplash.com/photo-1585060544812-6b45742d762f?w=400", VideoURL: portfolioVideoURL, Views: 540},
		{ID: 5, Title: "TECNO CAMON 40 Разблокировка", PhoneModel: "TECNO CAMON 40",
			ThumbnailURL: "https://images.unsplash.com/photo-1601784551446-20c9e07cdbdb?w=400", VideoURL: portfolioVideoURL, Views: 1780},
		{ID: 6, Title: "Vivo Y71A/Y71 FRP Helper", PhoneModel: "Vivo Y71A",
			ThumbnailURL: "https://images.unsplash.com/photo-1512054502232-13ded4b1f2a0?w=400", VideoURL: portfolioVideoURL, Views: 690},
	}
}
