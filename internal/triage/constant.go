package triage

// Classification prompt. The reply is matched by substring, so extra words
// from the model are tolerated.
const PromptClassify = `Проанализируй следующий текст и классифицируй его по одной из меток: заявка, вопрос или спам.
ВАЖНО, что эти сообщения адресуются конкретной компании и нерелевантные сообщения должны уходить в спам
К вопросам должны относиться только те сообщения, где пользователь хочет что-то узнать по тематике компании
К заявкам относятся сообщения, где видно, что пользователь хочет что-то купить, как-то проинвестировать или принести иную прибыль компании
Текст:
"""
%s
"""
Ответь только одним словом — одной меткой, без пояснений и дополнительного текста.`

// Extraction prompt, lead mode: contact info, full name, product.
const PromptExtractLead = `Следующий текст является заявкой, которая потенциально должна принести компании прибыль
Проанализируй текст и пойми какие данные из списка присутствуют в тексте
Список: ФИО, продукт или товар, который автор сообщения хочет приобрести, контактные данные
Текст:
"""
%s
"""
Ответь JSON в формате {"contact_info": контактные данные, "fio": фио клиента, "product": продукт, который хотят приобрести}.
Никаких других данных в ответе быть не должно, только JSON, который можно распарсить
Если каких-то данных нет в тексте, то на их месте пришли null
Дополнительно проверь данные на валидность, чтобы номер соответствовал реальному номеру, ФИО было адекватным и не придуманным, данные о продукте заноси в именительном падеже с указанием количества, если оно присутствует`

// Extraction prompt, case-notes mode: one free-text summary field.
const PromptExtractCaseNotes = `Следующий текст является заявкой, которая потенциально должна принести компании прибыль
Составь краткую сводку по заявке: кто обращается, что хочет и как с ним связаться
Текст:
"""
%s
"""
Ответь JSON в формате {"case_data": сводка по заявке}.
Никаких других данных в ответе быть не должно, только JSON, который можно распарсить
Если сводку составить невозможно, пришли null`

// Answer prompt for the question path. Context is the retrieved passages
// joined by newlines.
const PromptAnswer = `Ты - опытный сомелье, в задачу которого входит отвечать на вопросы пользователя про вина
и рекомендовать лучшие вина к еде. Посмотри на всю имеющуюся в твоем распоряжении информацию
и выдай одну или несколько лучших рекомендаций. Если что-то непонятно, то лучше уточни информацию
у пользователя. Если ты не знаешь ответ, то просто скажи "Не знаю".

Context: %s

Question: %s

Answer in detail:`

// User-facing terminal replies.
const (
	ReplySpamDeclined  = "Спасибо за сообщение, но оно не относится к тематике нашей компании."
	ReplyThankYou      = "Спасибо за заявку! Мы свяжемся с вами в ближайшее время."
	ReplyGenericError  = "Произошла ошибка при обработке запроса"
	ReplyPersistFailed = "К сожалению, не удалось сохранить вашу заявку. Пожалуйста, попробуйте позже."
	ReplyNoKnowledge   = "К сожалению, я не нашёл информации по вашему вопросу. Попробуйте переформулировать."
)

// DefaultRetrieveTopK is the number of passages fetched on the question path.
const DefaultRetrieveTopK = 3
