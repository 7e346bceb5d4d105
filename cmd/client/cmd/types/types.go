package types

// CtxKey — тип ключа для значений в контексте команд
type CtxKey string

// ClientAppKey — ключ, под которым App лежит в контексте команды
const ClientAppKey CtxKey = "app"
