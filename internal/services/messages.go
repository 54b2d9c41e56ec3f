package services

import "fmt"

// Reply texts sent back over WhatsApp. Asterisks are WhatsApp bold markers.

const (
	msgBienvenida = "¡Hola! 👋 Soy el asistente de *Pasenca*.\n\n" +
		"¿En qué puedo ayudarte?\n\n" +
		"1️⃣ Pedir cita de taller\n" +
		"2️⃣ Coches en venta\n" +
		"3️⃣ Horario y dirección\n" +
		"4️⃣ Hablar con una persona\n\n" +
		"Escribe el número de una opción o cuéntame qué necesitas."

	msgNoEntiendo = "Perdona, no te he entendido 🤔\n\n" +
		"Escribe *1* para cita de taller, *2* para coches en venta, " +
		"*3* para horario y dirección o *4* para hablar con una persona."

	msgHandoff = "¡Hecho! 🙋 Aviso a una persona del equipo para que te " +
		"atienda. Te escribimos por aquí lo antes posible."

	msgHumanoAck = "Un compañero del equipo te atenderá en breve 🙌 " +
		"Si quieres, deja aquí cualquier detalle más."

	msgPresupuesto = "Para darte un *presupuesto* ajustado necesitamos ver " +
		"el coche 🚗 Te paso con una persona del equipo que te lo concreta " +
		"sin compromiso."

	msgInfo = "📍 *Pasenca Automoción*\n" +
		"Polígono Industrial La Senda, nave 12\n\n" +
		"🕘 Lunes a viernes: 9:00–14:00 y 16:00–19:30\n" +
		"🕘 Sábados: 10:00–13:00\n\n" +
		"📞 Teléfono: 600 123 456"
)

// Workshop appointment flow
const (
	msgTallerMatricula = "¡Genial! Vamos a pedir tu *cita de taller* 🔧\n\n" +
		"Dime la *matrícula* del coche."

	msgTallerMatriculaRetry = "Esa matrícula parece demasiado corta 🤔 " +
		"Escríbela completa, por ejemplo *1234ABC*."

	msgTallerHorario = "¿Prefieres venir por la *mañana*, por la *tarde*, " +
		"o te da igual?"

	msgTallerHorarioRetry = "Dime si prefieres *mañana*, *tarde* o si te " +
		"da igual."

	msgTallerDia = "¿Qué *día* te vendría bien? Puede ser aproximado, por " +
		"ejemplo *el viernes*."

	msgTallerDiaRetry = "Necesito al menos una idea del día 📅 Por ejemplo: " +
		"*el viernes* o *la semana que viene*."

	msgTallerUrgente = "¿Es *urgente*? (sí/no)"

	msgTallerUrgenteRetry = "Respóndeme *sí* o *no*, por favor."

	msgTallerContacto = "Por último, ¿a qué *teléfono* te llamamos para " +
		"confirmar? Si es este mismo número, escribe *el mismo*."

	msgTallerContactoRetry = "No me ha quedado claro el contacto 📞 " +
		"Escribe un teléfono o *el mismo*."

	// Literal value recorded when the contact is this same WhatsApp number.
	contactoMismoNumero = "mismo número"
)

// Vehicle inquiry flow
const (
	msgCocheIdentificar = "¡Perfecto! 🚗 ¿Qué *coche* te interesa? Dime el " +
		"modelo o pega el enlace del anuncio."

	msgCocheIdentificarRetry = "Cuéntame un poco más sobre el coche que te " +
		"interesa: modelo, año, o el anuncio donde lo viste."

	msgCocheOrigenAnuncio = "¿Dónde viste el *anuncio*? (Instagram, " +
		"Facebook, nuestra web, en el local...)"

	msgCocheOrigenCliente = "Última pregunta 😊 ¿Cómo nos conociste?"

	msgCocheDisponibilidad = "Voy a comprobar la *disponibilidad* y te " +
		"decimos algo enseguida."
)

// tallerConfirmacion builds the appointment summary sent when the workshop
// flow completes.
func tallerConfirmacion(matricula, pref, dia, urgente, contacto string) string {
	return fmt.Sprintf("✅ *Cita solicitada*\n\n"+
		"🚗 Matrícula: %s\n"+
		"🕘 Preferencia: %s\n"+
		"📅 Día aproximado: %s\n"+
		"⚠️ Urgente: %s\n"+
		"📞 Contacto: %s\n\n"+
		"Te confirmamos la cita lo antes posible. ¡Gracias!",
		matricula, pref, dia, urgente, contacto)
}
