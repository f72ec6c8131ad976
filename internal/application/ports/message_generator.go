package ports

import "context"

// MessageGenerator define el puerto de salida hacia el servicio externo de
// redacción de mensajes. Cualquier adaptador (Anthropic, OpenAI, mock) debe
// implementar esta interfaz; la aplicación solo conoce este contrato.
//
// El colaborador es poco fiable por naturaleza (timeouts, salida malformada):
// el contexto debe llevar un deadline y el caso de uso que lo invoca absorbe
// el error con un mensaje fijo, nunca lo propaga al usuario.
type MessageGenerator interface {
	// GenerateMarketingMessage redacta un mensaje corto para el cliente a
	// partir de su nombre, el contexto de la sugerencia elegida y el texto
	// de última compra ya resuelto (fecha formateada o centinela explícito,
	// nunca vacío).
	GenerateMarketingMessage(ctx context.Context, firstName, contextHint, lastPurchaseDisplay string) (string, error)
}
