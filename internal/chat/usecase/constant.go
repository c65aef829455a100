package usecase

const (
	// DefaultContextTurnCount is the recent-turn window replayed per prompt.
	DefaultContextTurnCount = 6

	// DefaultMaxEntryChars caps a single knowledge entry or turn inside the
	// context block (rune count, not bytes).
	DefaultMaxEntryChars = 800

	completionTemperature = 0.7
)

// systemPrompt frames the assistant as the user's personal AI partner.
const systemPrompt = `あなたはユーザーの個人用 AI パートナーです。
ユーザーの過去データ（購入履歴、健康情報、好みなど）を踏まえて、
実用的で具体的なアドバイスをしてください。

ユーザーの質問に対して、親友のような温かいトーンで、
かつ論理的に回答してください。`
