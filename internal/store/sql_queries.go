package store

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	saveAnalysisLog = `INSERT INTO analysis_logs (user_id, input_text, category, confidence_score, summary, tone)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING log_id, user_id, input_text, category, confidence_score, summary, tone, created_at;`

	findAnalysesByUser = `SELECT log_id, user_id, input_text, category, confidence_score, summary, tone, created_at
    FROM analysis_logs
    WHERE user_id = $1
    ORDER BY created_at DESC, log_id DESC
    LIMIT $2;`
)

// Unique-constraint names created by the migrations. Used to map a
// pgerrcode.UniqueViolation to the right sentinel error.
const (
	usersUsernameConstraint = "users_username_key"
	usersEmailConstraint    = "users_email_key"
)
