package metrics

const Namespace = "mustdo"
