package store

// SQL query constants organized by entity.

// Hall queries.
const (
	queryCreateHall = `
		INSERT INTO halls (title, owner, created_at, updated_at)
		VALUES (@title, @owner, now(), now())
		RETURNING id, created_at, updated_at`

	queryGetHall = `
		SELECT id, title, owner, created_at, updated_at
		FROM halls
		WHERE id = $1`

	queryUpdateHall = `
		UPDATE halls SET title = @title, updated_at = now()
		WHERE id = @id
		RETURNING owner, created_at, updated_at`

	queryDeleteHall = `DELETE FROM halls WHERE id = $1`
)

// Video queries.
const (
	queryAddVideo = `
		INSERT INTO videos (hall_id, url, youtube_id, title, created_at)
		VALUES (@hall_id, @url, @youtube_id, @title, now())
		RETURNING id, created_at`

	queryListVideos = `
		SELECT id, hall_id, url, youtube_id, title, created_at
		FROM videos
		WHERE hall_id = $1
		ORDER BY created_at ASC, id ASC`

	queryDeleteVideo = `DELETE FROM videos WHERE hall_id = $1 AND id = $2`

	queryListUntitledVideos = `
		SELECT id, hall_id, url, youtube_id, title, created_at
		FROM videos
		WHERE title = ''
		ORDER BY title_checked_at ASC NULLS FIRST, created_at ASC
		LIMIT $1`

	queryUpdateVideoTitle = `UPDATE videos SET title = $2, title_checked_at = now() WHERE id = $1`

	queryMarkTitlesChecked = `UPDATE videos SET title_checked_at = now() WHERE id = ANY($1)`
)
