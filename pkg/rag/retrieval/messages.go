package retrieval

import "ticketdesk-be/internal/constant"

// User-facing strings returned by the orchestrator. These are part of the
// external contract and must not be reworded without updating the clients.
const (
	noTicketsEN = "No tickets found in the database."
	noTicketsJA = "データベースにチケットが見つかりませんでした。"

	quotaExceededEN = "Sorry, the AI service quota has been exceeded. Please wait a moment and try again."
	quotaExceededJA = "申し訳ありませんが、AIサービスの利用制限（クォータ）に達しました。しばらく待ってから再度お試しください。"

	systemErrorEN = "A system error occurred. Please wait a moment and try again."
	systemErrorJA = "システムエラーが発生しました。しばらく待ってから再度お試しください。"

	emptyGeneration = "No response generated."
)

const (
	promptTemplateEN = "You are an AI assistant for a ticket system. Use the following context to answer the user's question. If you don't know the answer based on the context, honestly state that you cannot answer from the provided information.\n\nContext:\n{context}\n\nQuestion: {question}"
	promptTemplateJA = "あなたはチケットシステムのAIアシスタントです。以下のコンテキストを使用して、ユーザーの質問に答えてください。もし答えがわからない場合は、正直に「提供された情報からは答えられません」と答えてください。\n\nコンテキスト:\n{context}\n\n質問: {question}"
)

func noTicketsMessage(locale string) string {
	if locale == constant.LocaleJA {
		return noTicketsJA
	}
	return noTicketsEN
}

func quotaExceededMessage(locale string) string {
	if locale == constant.LocaleJA {
		return quotaExceededJA
	}
	return quotaExceededEN
}

func systemErrorMessage(locale string) string {
	if locale == constant.LocaleJA {
		return systemErrorJA
	}
	return systemErrorEN
}

func promptTemplate(locale string) string {
	if locale == constant.LocaleJA {
		return promptTemplateJA
	}
	return promptTemplateEN
}
